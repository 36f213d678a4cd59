// internal/render/csv.go
package render

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"

	"stocklens/internal/domain"
)

// Report file names, numbered in the order the analysis reads.
const (
	StockoutsFile = "01_stockout_alerts.csv"
	ABCFile       = "02_abc_analysis.csv"
	TurnoverFile  = "03_inventory_turnover.csv"
	ReordersFile  = "04_reorder_priorities.csv"
	SuppliersFile = "05_supplier_performance.csv"
	SummaryFile   = "summary.txt"
)

// undefined is how undefined ratios render in CSV output.
const undefined = "n/a"

// WriteReportDir renders all five report tables plus the summary under
// dir and returns the file paths written.
func WriteReportDir(report *domain.AnalysisReport, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	files := map[string]func(w *csv.Writer) error{
		StockoutsFile: func(w *csv.Writer) error { return writeStockouts(w, report.Stockouts) },
		ABCFile:       func(w *csv.Writer) error { return writeABC(w, report.ABC) },
		TurnoverFile:  func(w *csv.Writer) error { return writeTurnover(w, report.Turnover) },
		ReordersFile:  func(w *csv.Writer) error { return writeReorders(w, report.Reorders) },
		SuppliersFile: func(w *csv.Writer) error { return writeSuppliers(w, report.Suppliers) },
	}

	paths := make([]string, 0, len(files)+1)
	for _, name := range []string{StockoutsFile, ABCFile, TurnoverFile, ReordersFile, SuppliersFile} {
		path := filepath.Join(dir, name)
		if err := writeFile(path, files[name]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	summaryPath := filepath.Join(dir, SummaryFile)
	if err := os.WriteFile(summaryPath, []byte(Summary(report)), 0o644); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}
	paths = append(paths, summaryPath)

	log.Info().Str("dir", dir).Int("files", len(paths)).Msg("reports rendered")
	return paths, nil
}

func writeFile(path string, fill func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := fill(w); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func writeStockouts(w *csv.Writer, alerts []domain.StockoutAlert) error {
	if err := w.Write([]string{"sku", "product_name", "category", "supplier", "quantity_on_hand", "available", "safety_stock", "reorder_point", "alert_level"}); err != nil {
		return err
	}
	for _, a := range alerts {
		if err := w.Write([]string{
			a.SKU, a.ProductName, a.Category, a.SupplierName,
			strconv.Itoa(a.QuantityOnHand), strconv.Itoa(a.Available),
			strconv.Itoa(a.SafetyStock), strconv.Itoa(a.ReorderPoint),
			string(a.Level),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeABC(w *csv.Writer, items []domain.ABCItem) error {
	if err := w.Write([]string{"sku", "product_name", "category", "inventory_value", "cumulative_pct", "abc_class"}); err != nil {
		return err
	}
	for _, it := range items {
		if err := w.Write([]string{
			it.SKU, it.ProductName, it.Category,
			it.LineValue.StringFixed(2),
			strconv.FormatFloat(it.CumulativePct, 'f', 2, 64),
			string(it.Class),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeTurnover(w *csv.Writer, rows []domain.CategoryTurnover) error {
	if err := w.Write([]string{"category", "cogs", "inventory_value", "turnover_ratio", "days_inventory_outstanding"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{
			r.Category, r.COGS.StringFixed(2), r.InventoryValue.StringFixed(2),
			formatRatio(r.TurnoverRatio), formatRatio(r.DaysOutstanding),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeReorders(w *csv.Writer, recs []domain.ReorderRecommendation) error {
	if err := w.Write([]string{"sku", "product_name", "category", "supplier", "lead_time_days", "quantity_on_hand", "avg_daily_sales", "days_of_stock_remaining", "recommended_qty", "estimated_cost"}); err != nil {
		return err
	}
	for _, rec := range recs {
		// Products with no recent sales print the conventional 999
		// sentinel; the report itself carries nil for them.
		days := strconv.Itoa(domain.NoVelocityDays)
		if rec.DaysOfStock != nil {
			days = strconv.FormatFloat(*rec.DaysOfStock, 'f', 1, 64)
		}
		if err := w.Write([]string{
			rec.SKU, rec.ProductName, rec.Category, rec.SupplierName,
			strconv.Itoa(rec.LeadTimeDays), strconv.Itoa(rec.QuantityOnHand),
			strconv.FormatFloat(rec.AvgDailySales, 'f', 2, 64), days,
			strconv.Itoa(rec.RecommendedQty), rec.EstimatedCost.StringFixed(2),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeSuppliers(w *csv.Writer, rows []domain.SupplierPerformance) error {
	if err := w.Write([]string{"supplier", "country", "reliability_score", "total_orders", "avg_order_value", "on_time_delivery_pct", "avg_delay_days", "products_supplied", "products_needing_reorder"}); err != nil {
		return err
	}
	for _, r := range rows {
		avgValue := undefined
		if r.AvgOrderValue != nil {
			avgValue = r.AvgOrderValue.StringFixed(2)
		}
		if err := w.Write([]string{
			r.SupplierName, r.Country,
			strconv.FormatFloat(r.ReliabilityScore, 'f', 1, 64),
			strconv.Itoa(r.TotalOrders), avgValue,
			formatRatio(r.OnTimeDeliveryPct), formatRatio(r.AvgDelayDays),
			strconv.Itoa(r.ProductsSupplied), strconv.Itoa(r.ProductsNeedingReorder),
		}); err != nil {
			return err
		}
	}
	return nil
}

func formatRatio(v *float64) string {
	if v == nil {
		return undefined
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
