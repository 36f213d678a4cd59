package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
	"stocklens/internal/service"
)

type stubRepo struct {
	snap *domain.Snapshot
}

func (s *stubRepo) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	return s.snap, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := &stubRepo{snap: &domain.Snapshot{
		Suppliers: []domain.Supplier{
			{ID: 1, Name: "Acme", Country: "Germany", ReliabilityScore: 4.5, AvgLeadTimeDays: 7},
		},
		Products: []domain.Product{
			{ID: 1, SKU: "SKU-0001", Name: "Widget", Category: "Electronics",
				UnitCost: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(9),
				ReorderPoint: 20, ReorderQuantity: 50, SafetyStock: 10,
				SupplierID: 1, LeadTimeDays: 7},
		},
		Inventory: []domain.InventoryRecord{
			{ProductID: 1, QuantityOnHand: 0, WarehouseLocation: "A1"},
		},
	}}
	return NewRouter(service.NewAnalyticsService(repo, nil, nil), nil)
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestRouter(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGetStockouts(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/v1/reports/stockouts?as_of=2026-03-01")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Alerts []domain.StockoutAlert `json:"stockout_alerts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(body.Alerts))
	}
	if body.Alerts[0].Level != domain.AlertCritical {
		t.Errorf("level = %s, want CRITICAL", body.Alerts[0].Level)
	}
}

func TestGetDashboard(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/v1/dashboard?as_of=2026-03-01")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var report domain.AnalysisReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Overview.TotalProducts != 1 {
		t.Errorf("total products = %d, want 1", report.Overview.TotalProducts)
	}
	if report.Overview.OutOfStock != 1 {
		t.Errorf("out of stock = %d, want 1", report.Overview.OutOfStock)
	}
}

func TestBadAsOf(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/v1/reports/abc?as_of=March-1st")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestIntegrityErrorMapsTo422(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubRepo{snap: &domain.Snapshot{
		Products: []domain.Product{
			{ID: 1, SKU: "SKU-0001", Name: "Widget", Category: "Electronics", SupplierID: 99},
		},
	}}
	router := NewRouter(service.NewAnalyticsService(repo, nil, nil), nil)

	rec := get(t, router, "/api/v1/dashboard?as_of=2026-03-01")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body = %s", rec.Code, rec.Body.String())
	}
}
