package engine

import (
	"testing"
	"time"

	"stocklens/internal/domain"
)

var reorderAsOf = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func saleOn(id, productID int64, daysBefore, qty int) domain.SalesTransaction {
	return domain.SalesTransaction{
		ID:           id,
		ProductID:    productID,
		Date:         reorderAsOf.AddDate(0, 0, -daysBefore),
		QuantitySold: qty,
	}
}

func TestReorderRecommendations_Quantity(t *testing.T) {
	tests := []struct {
		name         string
		onHand       int
		safetyStock  int
		reorderPoint int
		reorderQty   int
		wantRow      bool
		wantQty      int
	}{
		{"below safety tops up to safety", 0, 10, 20, 50, true, 60},
		{"partially below safety", 4, 10, 20, 50, true, 56},
		{"at safety stock", 10, 10, 20, 50, true, 50},
		{"between safety and reorder point", 15, 10, 20, 50, true, 50},
		{"at reorder point", 20, 10, 20, 50, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProduct(1, "SKU-1", tt.safetyStock, tt.reorderPoint)
			p.ReorderQuantity = tt.reorderQty
			snap := &domain.Snapshot{
				Suppliers: []domain.Supplier{testSupplier(1, "Acme")},
				Products:  []domain.Product{p},
				Inventory: []domain.InventoryRecord{testInventory(1, tt.onHand)},
			}
			idx, err := buildIndex(snap)
			if err != nil {
				t.Fatalf("buildIndex: %v", err)
			}

			recs := New().reorderRecommendations(idx, reorderAsOf)
			if !tt.wantRow {
				if len(recs) != 0 {
					t.Fatalf("expected no recommendation, got %+v", recs)
				}
				return
			}
			if len(recs) != 1 {
				t.Fatalf("expected 1 recommendation, got %d", len(recs))
			}
			if recs[0].RecommendedQty != tt.wantQty {
				t.Errorf("RecommendedQty = %d, want %d", recs[0].RecommendedQty, tt.wantQty)
			}
		})
	}
}

func TestReorderRecommendations_SalesWindow(t *testing.T) {
	snap := &domain.Snapshot{
		Suppliers: []domain.Supplier{testSupplier(1, "Acme")},
		Products:  []domain.Product{testProduct(1, "SKU-1", 10, 20)},
		Inventory: []domain.InventoryRecord{testInventory(1, 12)},
		Sales: []domain.SalesTransaction{
			saleOn(1, 1, 10, 4),
			saleOn(2, 1, 30, 8),
			saleOn(3, 1, 120, 500), // outside the 90-day window, ignored
		},
	}
	idx, err := buildIndex(snap)
	if err != nil {
		t.Fatalf("buildIndex: %v", err)
	}

	recs := New().reorderRecommendations(idx, reorderAsOf)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	rec := recs[0]
	if rec.AvgDailySales != 6 {
		t.Errorf("AvgDailySales = %f, want 6 (mean of 4 and 8)", rec.AvgDailySales)
	}
	if rec.DaysOfStock == nil || *rec.DaysOfStock != 2 {
		t.Errorf("DaysOfStock = %v, want 2", rec.DaysOfStock)
	}
	if rec.NoRecentSales {
		t.Error("NoRecentSales = true for a product with window sales")
	}
}

func TestReorderRecommendations_NoVelocitySentinel(t *testing.T) {
	snap := &domain.Snapshot{
		Suppliers: []domain.Supplier{testSupplier(1, "Acme")},
		Products:  []domain.Product{testProduct(1, "SKU-1", 10, 20)},
		Inventory: []domain.InventoryRecord{testInventory(1, 5)},
		Sales:     []domain.SalesTransaction{saleOn(1, 1, 91, 30)}, // stale
	}
	idx, err := buildIndex(snap)
	if err != nil {
		t.Fatalf("buildIndex: %v", err)
	}

	recs := New().reorderRecommendations(idx, reorderAsOf)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].DaysOfStock != nil {
		t.Errorf("DaysOfStock = %v, want nil sentinel", *recs[0].DaysOfStock)
	}
	if !recs[0].NoRecentSales {
		t.Error("NoRecentSales = false, want true")
	}
}

func TestReorderRecommendations_UrgencyOrdering(t *testing.T) {
	snap := &domain.Snapshot{
		Suppliers: []domain.Supplier{testSupplier(1, "Acme")},
		Products: []domain.Product{
			testProduct(1, "SKU-1", 10, 20),
			testProduct(2, "SKU-2", 10, 20),
			testProduct(3, "SKU-3", 10, 20),
		},
		Inventory: []domain.InventoryRecord{
			testInventory(1, 12), // 12 days of stock
			testInventory(2, 2),  // 2 days of stock
			testInventory(3, 6),  // no recent sales, sorts last
		},
		Sales: []domain.SalesTransaction{
			saleOn(1, 1, 5, 1),
			saleOn(2, 2, 5, 1),
		},
	}
	idx, err := buildIndex(snap)
	if err != nil {
		t.Fatalf("buildIndex: %v", err)
	}

	recs := New().reorderRecommendations(idx, reorderAsOf)
	wantOrder := []int64{2, 1, 3}
	if len(recs) != len(wantOrder) {
		t.Fatalf("expected %d recommendations, got %d", len(wantOrder), len(recs))
	}
	for i, want := range wantOrder {
		if recs[i].ProductID != want {
			t.Errorf("recs[%d].ProductID = %d, want %d", i, recs[i].ProductID, want)
		}
	}
}
