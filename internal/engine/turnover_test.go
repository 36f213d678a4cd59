package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

func TestTurnoverByCategory(t *testing.T) {
	sale := func(id, productID int64, qty int) domain.SalesTransaction {
		return domain.SalesTransaction{
			ID:        id,
			ProductID: productID,
			Date:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			QuantitySold: qty,
			SaleAmount:   decimal.NewFromInt(int64(qty) * 20),
		}
	}

	electronics := testProduct(1, "SKU-1", 0, 0) // unit cost 10, category Electronics
	clothing := testProduct(2, "SKU-2", 0, 0)
	clothing.Category = "Clothing"
	food := testProduct(3, "SKU-3", 0, 0)
	food.Category = "Food"

	snap := &domain.Snapshot{
		Suppliers: []domain.Supplier{testSupplier(1, "Acme")},
		Products:  []domain.Product{electronics, clothing, food},
		Inventory: []domain.InventoryRecord{
			testInventory(1, 10), // Electronics value 100
			testInventory(2, 50), // Clothing value 500
			testInventory(3, 0),  // Food value 0
		},
		Sales: []domain.SalesTransaction{
			sale(1, 1, 40), // Electronics COGS 400 -> ratio 4
			sale(2, 2, 10), // Clothing COGS 100 -> ratio 0.2
			sale(3, 3, 5),  // Food COGS 50, no inventory value -> undefined
		},
	}

	idx, err := buildIndex(snap)
	if err != nil {
		t.Fatalf("buildIndex: %v", err)
	}
	rows := New().turnoverByCategory(idx)

	if len(rows) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(rows))
	}

	if rows[0].Category != "Electronics" {
		t.Errorf("rows[0] = %s, want Electronics (highest ratio first)", rows[0].Category)
	}
	if rows[0].TurnoverRatio == nil || *rows[0].TurnoverRatio != 4 {
		t.Errorf("Electronics ratio = %v, want 4", rows[0].TurnoverRatio)
	}
	if rows[0].DaysOutstanding == nil || *rows[0].DaysOutstanding != 365.0/4 {
		t.Errorf("Electronics days outstanding = %v, want 91.25", rows[0].DaysOutstanding)
	}

	if rows[1].Category != "Clothing" {
		t.Errorf("rows[1] = %s, want Clothing", rows[1].Category)
	}

	// Zero inventory value: ratio and days must be undefined, and the
	// category still sorts (last), never faults.
	last := rows[2]
	if last.Category != "Food" {
		t.Errorf("rows[2] = %s, want Food (undefined ratio sorts last)", last.Category)
	}
	if last.TurnoverRatio != nil {
		t.Errorf("Food ratio = %v, want undefined", *last.TurnoverRatio)
	}
	if last.DaysOutstanding != nil {
		t.Errorf("Food days outstanding = %v, want undefined", *last.DaysOutstanding)
	}
}

func TestTurnoverByCategory_NoSales(t *testing.T) {
	snap := &domain.Snapshot{
		Suppliers: []domain.Supplier{testSupplier(1, "Acme")},
		Products:  []domain.Product{testProduct(1, "SKU-1", 0, 0)},
		Inventory: []domain.InventoryRecord{testInventory(1, 10)},
	}
	idx, err := buildIndex(snap)
	if err != nil {
		t.Fatalf("buildIndex: %v", err)
	}
	rows := New().turnoverByCategory(idx)

	if len(rows) != 1 {
		t.Fatalf("expected 1 category, got %d", len(rows))
	}
	if rows[0].TurnoverRatio == nil || *rows[0].TurnoverRatio != 0 {
		t.Errorf("ratio = %v, want 0 for a category with inventory but no sales", rows[0].TurnoverRatio)
	}
	if rows[0].DaysOutstanding != nil {
		t.Errorf("days outstanding = %v, want undefined for zero ratio", *rows[0].DaysOutstanding)
	}
}

func TestTurnoverByCategory_EmptySnapshot(t *testing.T) {
	idx, err := buildIndex(&domain.Snapshot{})
	if err != nil {
		t.Fatalf("buildIndex: %v", err)
	}
	if rows := New().turnoverByCategory(idx); len(rows) != 0 {
		t.Fatalf("expected empty output, got %+v", rows)
	}
}
