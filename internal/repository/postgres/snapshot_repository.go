// internal/repository/postgres/snapshot_repository.go
package postgres

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"stocklens/internal/domain"
	"stocklens/internal/repository"
)

type snapshotRepository struct {
	db *DB
}

// NewSnapshotRepository returns a loader over the five inventory
// tables. The postgres schema mirrors the sqlite one; dates are
// DATE/TIMESTAMP columns and scan directly.
func NewSnapshotRepository(db *DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	if err := r.db.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("could not acquire semaphore: %w", err)
	}
	defer r.db.sem.Release(1)

	snap := &domain.Snapshot{}

	if err := r.db.SelectContext(ctx, &snap.Suppliers, `
		SELECT supplier_id, supplier_name, country, reliability_score, avg_lead_time
		FROM suppliers`); err != nil {
		return nil, fmt.Errorf("load suppliers: %w", err)
	}

	if err := r.db.SelectContext(ctx, &snap.Products, `
		SELECT product_id, sku, product_name, category, unit_cost, unit_price,
		       reorder_point, reorder_quantity, safety_stock, supplier_id, lead_time_days
		FROM products`); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	if err := r.db.SelectContext(ctx, &snap.Inventory, `
		SELECT product_id, quantity_on_hand, reserved_quantity, warehouse_location, last_counted
		FROM inventory`); err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	if err := r.db.SelectContext(ctx, &snap.Sales, `
		SELECT transaction_id, product_id, transaction_date, quantity_sold, sale_amount, customer_type
		FROM sales_transactions`); err != nil {
		return nil, fmt.Errorf("load sales transactions: %w", err)
	}

	if err := r.db.SelectContext(ctx, &snap.PurchaseOrders, `
		SELECT po_id, product_id, supplier_id, order_date, expected_delivery_date,
		       actual_delivery_date, quantity_ordered, unit_cost, status
		FROM purchase_orders`); err != nil {
		return nil, fmt.Errorf("load purchase orders: %w", err)
	}

	log.Debug().
		Int("products", len(snap.Products)).
		Int("inventory", len(snap.Inventory)).
		Int("suppliers", len(snap.Suppliers)).
		Int("sales", len(snap.Sales)).
		Int("purchase_orders", len(snap.PurchaseOrders)).
		Msg("snapshot loaded")

	return snap, nil
}
