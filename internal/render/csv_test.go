package render

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

func sampleReport() *domain.AnalysisReport {
	ratio := 4.0
	days := 91.25
	stock := 2.5
	return &domain.AnalysisReport{
		AsOf: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Stockouts: []domain.StockoutAlert{
			{ProductID: 1, SKU: "SKU-0001", ProductName: "Widget", Category: "Electronics",
				SupplierName: "Acme", QuantityOnHand: 0, Available: -2, SafetyStock: 10,
				ReorderPoint: 25, Level: domain.AlertCritical},
		},
		ABC: []domain.ABCItem{
			{ProductID: 1, SKU: "SKU-0001", ProductName: "Widget", Category: "Electronics",
				LineValue: decimal.NewFromInt(600), CumulativeValue: decimal.NewFromInt(600),
				CumulativePct: 100, Class: domain.ClassA},
		},
		Turnover: []domain.CategoryTurnover{
			{Category: "Electronics", COGS: decimal.NewFromInt(400), InventoryValue: decimal.NewFromInt(100),
				TurnoverRatio: &ratio, DaysOutstanding: &days},
			{Category: "Food", COGS: decimal.NewFromInt(50), InventoryValue: decimal.Zero},
		},
		Reorders: []domain.ReorderRecommendation{
			{ProductID: 1, SKU: "SKU-0001", ProductName: "Widget", Category: "Electronics",
				SupplierName: "Acme", LeadTimeDays: 7, QuantityOnHand: 5, AvgDailySales: 2,
				DaysOfStock: &stock, RecommendedQty: 40, EstimatedCost: decimal.NewFromInt(200)},
			{ProductID: 2, SKU: "SKU-0002", ProductName: "Gadget", Category: "Electronics",
				SupplierName: "Acme", LeadTimeDays: 7, QuantityOnHand: 3, NoRecentSales: true,
				RecommendedQty: 30, EstimatedCost: decimal.NewFromInt(90)},
		},
		Suppliers: []domain.SupplierPerformance{
			{SupplierID: 1, SupplierName: "Acme", Country: "Germany", ReliabilityScore: 4.2,
				TotalOrders: 0, ProductsSupplied: 2, ProductsNeedingReorder: 1},
		},
		Overview: domain.Overview{
			TotalProducts:       2,
			TotalInventoryValue: decimal.NewFromInt(600),
			OutOfStock:          1,
			NeedsReorder:        2,
			TopCategory:         "Electronics",
			TopCategoryValue:    decimal.NewFromInt(600),
		},
	}
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWriteReportDir(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteReportDir(sampleReport(), dir)
	if err != nil {
		t.Fatalf("WriteReportDir: %v", err)
	}
	if len(paths) != 6 {
		t.Fatalf("paths = %d, want 6", len(paths))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing artifact %s: %v", p, err)
		}
	}

	stockouts := readCSVFile(t, filepath.Join(dir, StockoutsFile))
	if len(stockouts) != 2 {
		t.Fatalf("stockout rows = %d, want header + 1", len(stockouts))
	}
	row := stockouts[1]
	if row[0] != "SKU-0001" || row[5] != "-2" || row[8] != "CRITICAL" {
		t.Errorf("stockout row = %v", row)
	}

	turnover := readCSVFile(t, filepath.Join(dir, TurnoverFile))
	if got := turnover[2][3]; got != "n/a" {
		t.Errorf("undefined turnover ratio rendered %q, want n/a", got)
	}
	if got := turnover[1][3]; got != "4.00" {
		t.Errorf("turnover ratio rendered %q, want 4.00", got)
	}

	reorders := readCSVFile(t, filepath.Join(dir, ReordersFile))
	if got := reorders[2][7]; got != "999" {
		t.Errorf("no-velocity days rendered %q, want 999", got)
	}
	if got := reorders[1][7]; got != "2.5" {
		t.Errorf("days of stock rendered %q, want 2.5", got)
	}

	suppliers := readCSVFile(t, filepath.Join(dir, SuppliersFile))
	if got := suppliers[1][4]; got != "n/a" {
		t.Errorf("avg order value with no orders rendered %q, want n/a", got)
	}
}

func TestSummary(t *testing.T) {
	text := Summary(sampleReport())

	for _, want := range []string{
		"as of 2026-03-01",
		"Total products:          2",
		"Out of stock:            1",
		"critical 1, urgent 0, warning 0",
		"A=1 B=0 C=0",
		"no recent sales",
		"Top category by value:   Electronics",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q\n%s", want, text)
		}
	}
}
