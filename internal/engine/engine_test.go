package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

func TestEngine_Run_EndToEnd(t *testing.T) {
	asOf := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	p := domain.Product{
		ID:              1,
		SKU:             "SKU-100",
		Name:            "Widget",
		Category:        "Electronics",
		UnitCost:        decimal.NewFromInt(2),
		ReorderPoint:    10,
		ReorderQuantity: 20,
		SafetyStock:     5,
		SupplierID:      1,
		LeadTimeDays:    14,
	}
	snap := &domain.Snapshot{
		Suppliers: []domain.Supplier{testSupplier(1, "Acme")},
		Products:  []domain.Product{p},
		Inventory: []domain.InventoryRecord{testInventory(1, 0)},
		// Only stale sales: no velocity inside the window.
		Sales: []domain.SalesTransaction{saleOn(1, 1, 120, 10)},
	}

	report, err := New().Run(context.Background(), snap, asOf)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(report.Stockouts) != 1 || report.Stockouts[0].Level != domain.AlertCritical {
		t.Fatalf("stockouts = %+v, want one CRITICAL alert", report.Stockouts)
	}

	if len(report.Reorders) != 1 {
		t.Fatalf("reorders = %+v, want one recommendation", report.Reorders)
	}
	rec := report.Reorders[0]
	if rec.RecommendedQty != 25 {
		t.Errorf("RecommendedQty = %d, want 25 (20 + safety top-up of 5)", rec.RecommendedQty)
	}
	if rec.DaysOfStock != nil || !rec.NoRecentSales {
		t.Errorf("DaysOfStock = %v NoRecentSales = %v, want nil sentinel", rec.DaysOfStock, rec.NoRecentSales)
	}

	if len(report.ABC) != 1 || report.ABC[0].Class != domain.ClassA {
		t.Errorf("ABC = %+v, want a single class A row", report.ABC)
	}
	if len(report.Suppliers) != 1 || report.Suppliers[0].TotalOrders != 0 {
		t.Errorf("suppliers = %+v, want Acme with zero orders", report.Suppliers)
	}

	if report.Overview.OutOfStock != 1 || report.Overview.NeedsReorder != 1 {
		t.Errorf("overview = %+v, want 1 out of stock and 1 needing reorder", report.Overview)
	}
	// 20 units at cost 2.
	if !report.Overview.EstimatedReorderCost.Equal(decimal.NewFromInt(40)) {
		t.Errorf("EstimatedReorderCost = %s, want 40", report.Overview.EstimatedReorderCost)
	}
}

func TestEngine_Run_Deterministic(t *testing.T) {
	asOf := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	snap := &domain.Snapshot{
		Suppliers: []domain.Supplier{testSupplier(1, "Acme"), testSupplier(2, "Globex")},
		Products: []domain.Product{
			testProduct(1, "SKU-1", 10, 20),
			testProduct(2, "SKU-2", 10, 20),
			testProduct(3, "SKU-3", 5, 40),
		},
		Inventory: []domain.InventoryRecord{
			testInventory(1, 3),
			testInventory(2, 3), // same on-hand and value as product 1: tie-break territory
			testInventory(3, 60),
		},
		Sales: []domain.SalesTransaction{
			saleOn(1, 1, 10, 5),
			saleOn(2, 2, 20, 5),
			saleOn(3, 3, 30, 2),
		},
		PurchaseOrders: []domain.PurchaseOrder{
			po(1, 1, 1, 10, 10, asOf.AddDate(0, 0, -30), datePtr(asOf.AddDate(0, 0, -30))),
			po(2, 2, 2, 10, 10, asOf.AddDate(0, 0, -30), nil),
		},
	}

	first, err := New().Run(context.Background(), snap, asOf)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := New().Run(context.Background(), snap, asOf)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("two runs over the same snapshot differ:\n%s\n%s", a, b)
	}
}

func TestEngine_Run_ReferentialIntegrity(t *testing.T) {
	tests := []struct {
		name string
		snap *domain.Snapshot
	}{
		{
			"inventory references missing product",
			&domain.Snapshot{
				Suppliers: []domain.Supplier{testSupplier(1, "Acme")},
				Inventory: []domain.InventoryRecord{testInventory(99, 5)},
			},
		},
		{
			"sale references missing product",
			&domain.Snapshot{
				Suppliers: []domain.Supplier{testSupplier(1, "Acme")},
				Sales:     []domain.SalesTransaction{{ID: 1, ProductID: 99}},
			},
		},
		{
			"product references missing supplier",
			&domain.Snapshot{
				Products: []domain.Product{testProduct(1, "SKU-1", 5, 10)},
			},
		},
		{
			"purchase order references missing supplier",
			&domain.Snapshot{
				Suppliers:      []domain.Supplier{testSupplier(1, "Acme")},
				Products:       []domain.Product{testProduct(1, "SKU-1", 5, 10)},
				PurchaseOrders: []domain.PurchaseOrder{{ID: 1, SupplierID: 99, ProductID: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Run(context.Background(), tt.snap, time.Now())
			var rerr *domain.ReferentialIntegrityError
			if !errors.As(err, &rerr) {
				t.Fatalf("err = %v, want ReferentialIntegrityError", err)
			}
		})
	}
}

func TestEngine_Run_EmptySnapshot(t *testing.T) {
	report, err := New().Run(context.Background(), &domain.Snapshot{}, time.Now())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Stockouts)+len(report.ABC)+len(report.Turnover)+len(report.Reorders)+len(report.Suppliers) != 0 {
		t.Errorf("expected all report tables empty, got %+v", report)
	}
}

func TestOverview_SlowMoversAndTopCategory(t *testing.T) {
	asOf := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	fast := testProduct(1, "SKU-1", 0, 0)
	slow := testProduct(2, "SKU-2", 0, 0)
	slow.Category = "Food"

	snap := &domain.Snapshot{
		Suppliers: []domain.Supplier{testSupplier(1, "Acme")},
		Products:  []domain.Product{fast, slow},
		Inventory: []domain.InventoryRecord{
			testInventory(1, 10), // value 100, Electronics
			testInventory(2, 30), // value 300, Food, slow mover
		},
		Sales: []domain.SalesTransaction{
			saleOn(1, 1, 10, 8), // fast: 8 units in window
			saleOn(2, 2, 10, 2), // slow: under the threshold
		},
	}
	idx, err := buildIndex(snap)
	if err != nil {
		t.Fatalf("buildIndex: %v", err)
	}

	ov := New().overview(idx, asOf)
	if !ov.SlowMovingValue.Equal(decimal.NewFromInt(300)) {
		t.Errorf("SlowMovingValue = %s, want 300", ov.SlowMovingValue)
	}
	if ov.TopCategory != "Food" || !ov.TopCategoryValue.Equal(decimal.NewFromInt(300)) {
		t.Errorf("TopCategory = %s (%s), want Food (300)", ov.TopCategory, ov.TopCategoryValue)
	}
	if !ov.TotalInventoryValue.Equal(decimal.NewFromInt(400)) {
		t.Errorf("TotalInventoryValue = %s, want 400", ov.TotalInventoryValue)
	}
}
