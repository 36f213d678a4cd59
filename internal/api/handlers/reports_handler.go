package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"stocklens/internal/domain"
	"stocklens/internal/service"
)

type ReportsHandler struct {
	service *service.AnalyticsService
}

func NewReportsHandler(service *service.AnalyticsService) *ReportsHandler {
	return &ReportsHandler{service: service}
}

// parseAsOf reads the optional as_of query parameter (YYYY-MM-DD). The
// analysis defaults to the end of today in UTC so same-day sales count.
func parseAsOf(c *gin.Context) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query("as_of"))
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC), true
	}

	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid as_of date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC), true
}

func (h *ReportsHandler) respond(c *gin.Context, err error, payload any) {
	if err != nil {
		var integrity *domain.ReferentialIntegrityError
		if errors.As(err, &integrity) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("report request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *ReportsHandler) GetDashboard(c *gin.Context) {
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}
	report, err := h.service.GetReport(c.Request.Context(), asOf)
	h.respond(c, err, report)
}

func (h *ReportsHandler) GetStockouts(c *gin.Context) {
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}
	alerts, err := h.service.GetStockouts(c.Request.Context(), asOf)
	h.respond(c, err, gin.H{"as_of": asOf, "stockout_alerts": alerts})
}

func (h *ReportsHandler) GetABC(c *gin.Context) {
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}
	items, err := h.service.GetABC(c.Request.Context(), asOf)
	h.respond(c, err, gin.H{"as_of": asOf, "abc_classification": items})
}

func (h *ReportsHandler) GetTurnover(c *gin.Context) {
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}
	rows, err := h.service.GetTurnover(c.Request.Context(), asOf)
	h.respond(c, err, gin.H{"as_of": asOf, "turnover_by_category": rows})
}

func (h *ReportsHandler) GetReorders(c *gin.Context) {
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}
	recs, err := h.service.GetReorders(c.Request.Context(), asOf)
	h.respond(c, err, gin.H{"as_of": asOf, "reorder_recommendations": recs})
}

func (h *ReportsHandler) GetSuppliers(c *gin.Context) {
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}
	rows, err := h.service.GetSuppliers(c.Request.Context(), asOf)
	h.respond(c, err, gin.H{"as_of": asOf, "supplier_performance": rows})
}
