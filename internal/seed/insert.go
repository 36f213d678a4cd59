// internal/seed/insert.go
package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"stocklens/internal/domain"
)

// InsertSnapshot loads a snapshot into the five tables inside a single
// transaction. Bindvars are rebound per driver so it works against
// both the sqlite and postgres stores.
func InsertSnapshot(ctx context.Context, db *sqlx.DB, snap *domain.Snapshot) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, s := range snap.Suppliers {
		if _, err := tx.ExecContext(ctx, db.Rebind(
			`INSERT INTO suppliers (supplier_id, supplier_name, country, reliability_score, avg_lead_time)
			 VALUES (?, ?, ?, ?, ?)`),
			s.ID, s.Name, s.Country, s.ReliabilityScore, s.AvgLeadTimeDays); err != nil {
			return fmt.Errorf("insert supplier %d: %w", s.ID, err)
		}
	}

	for _, p := range snap.Products {
		if _, err := tx.ExecContext(ctx, db.Rebind(
			`INSERT INTO products (product_id, sku, product_name, category, unit_cost, unit_price,
			                       reorder_point, reorder_quantity, safety_stock, supplier_id, lead_time_days)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			p.ID, p.SKU, p.Name, p.Category, p.UnitCost.String(), p.UnitPrice.String(),
			p.ReorderPoint, p.ReorderQuantity, p.SafetyStock, p.SupplierID, p.LeadTimeDays); err != nil {
			return fmt.Errorf("insert product %d: %w", p.ID, err)
		}
	}

	for _, r := range snap.Inventory {
		if _, err := tx.ExecContext(ctx, db.Rebind(
			`INSERT INTO inventory (product_id, quantity_on_hand, warehouse_location, last_counted, reserved_quantity)
			 VALUES (?, ?, ?, ?, ?)`),
			r.ProductID, r.QuantityOnHand, r.WarehouseLocation, r.LastCounted.Format(dateLayout), r.ReservedQuantity); err != nil {
			return fmt.Errorf("insert inventory %d: %w", r.ProductID, err)
		}
	}

	for _, s := range snap.Sales {
		if _, err := tx.ExecContext(ctx, db.Rebind(
			`INSERT INTO sales_transactions (transaction_id, product_id, transaction_date, quantity_sold, sale_amount, customer_type)
			 VALUES (?, ?, ?, ?, ?, ?)`),
			s.ID, s.ProductID, s.Date.Format(dateLayout), s.QuantitySold, s.SaleAmount.String(), s.CustomerType); err != nil {
			return fmt.Errorf("insert sales transaction %d: %w", s.ID, err)
		}
	}

	for _, po := range snap.PurchaseOrders {
		var actual interface{}
		if po.ActualDelivery != nil {
			actual = po.ActualDelivery.Format(dateLayout)
		}
		if _, err := tx.ExecContext(ctx, db.Rebind(
			`INSERT INTO purchase_orders (po_id, product_id, supplier_id, order_date, expected_delivery_date,
			                              actual_delivery_date, quantity_ordered, unit_cost, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			po.ID, po.ProductID, po.SupplierID, po.OrderDate.Format(dateLayout),
			po.ExpectedDelivery.Format(dateLayout), actual,
			po.QuantityOrdered, po.UnitCost.String(), po.Status); err != nil {
			return fmt.Errorf("insert purchase order %d: %w", po.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	log.Info().
		Int("products", len(snap.Products)).
		Int("suppliers", len(snap.Suppliers)).
		Int("inventory", len(snap.Inventory)).
		Int("sales", len(snap.Sales)).
		Int("purchase_orders", len(snap.PurchaseOrders)).
		Msg("snapshot seeded")

	return nil
}
