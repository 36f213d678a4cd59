// internal/repository/sqlite/snapshot_repository.go
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

const dateLayout = "2006-01-02"

// Row types mirror the sqlite column affinities; dates come back as
// TEXT and are parsed here rather than by the driver.

type supplierRow struct {
	ID               int64   `db:"supplier_id"`
	Name             string  `db:"supplier_name"`
	Country          string  `db:"country"`
	ReliabilityScore float64 `db:"reliability_score"`
	AvgLeadTime      int     `db:"avg_lead_time"`
}

type productRow struct {
	ID              int64           `db:"product_id"`
	SKU             string          `db:"sku"`
	Name            string          `db:"product_name"`
	Category        string          `db:"category"`
	UnitCost        decimal.Decimal `db:"unit_cost"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	ReorderPoint    int             `db:"reorder_point"`
	ReorderQuantity int             `db:"reorder_quantity"`
	SafetyStock     int             `db:"safety_stock"`
	SupplierID      int64           `db:"supplier_id"`
	LeadTimeDays    int             `db:"lead_time_days"`
}

type inventoryRow struct {
	ProductID         int64  `db:"product_id"`
	QuantityOnHand    int    `db:"quantity_on_hand"`
	WarehouseLocation string `db:"warehouse_location"`
	LastCounted       string `db:"last_counted"`
	ReservedQuantity  int    `db:"reserved_quantity"`
}

type transactionRow struct {
	ID           int64           `db:"transaction_id"`
	ProductID    int64           `db:"product_id"`
	Date         string          `db:"transaction_date"`
	QuantitySold int             `db:"quantity_sold"`
	SaleAmount   decimal.Decimal `db:"sale_amount"`
	CustomerType string          `db:"customer_type"`
}

type purchaseOrderRow struct {
	ID               int64           `db:"po_id"`
	ProductID        int64           `db:"product_id"`
	SupplierID       int64           `db:"supplier_id"`
	OrderDate        string          `db:"order_date"`
	ExpectedDelivery string          `db:"expected_delivery_date"`
	ActualDelivery   sql.NullString  `db:"actual_delivery_date"`
	QuantityOrdered  int             `db:"quantity_ordered"`
	UnitCost         decimal.Decimal `db:"unit_cost"`
	Status           string          `db:"status"`
}

// LoadSnapshot reads all five tables into memory.
func (s *Store) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}

	var suppliers []supplierRow
	if err := s.db.SelectContext(ctx, &suppliers, `SELECT supplier_id, supplier_name, country, reliability_score, avg_lead_time FROM suppliers`); err != nil {
		return nil, fmt.Errorf("load suppliers: %w", err)
	}
	for _, r := range suppliers {
		snap.Suppliers = append(snap.Suppliers, domain.Supplier{
			ID:               r.ID,
			Name:             r.Name,
			Country:          r.Country,
			ReliabilityScore: r.ReliabilityScore,
			AvgLeadTimeDays:  r.AvgLeadTime,
		})
	}

	var products []productRow
	if err := s.db.SelectContext(ctx, &products, `SELECT product_id, sku, product_name, category, unit_cost, unit_price, reorder_point, reorder_quantity, safety_stock, supplier_id, lead_time_days FROM products`); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	for _, r := range products {
		snap.Products = append(snap.Products, domain.Product{
			ID:              r.ID,
			SKU:             r.SKU,
			Name:            r.Name,
			Category:        r.Category,
			UnitCost:        r.UnitCost,
			UnitPrice:       r.UnitPrice,
			ReorderPoint:    r.ReorderPoint,
			ReorderQuantity: r.ReorderQuantity,
			SafetyStock:     r.SafetyStock,
			SupplierID:      r.SupplierID,
			LeadTimeDays:    r.LeadTimeDays,
		})
	}

	var inventory []inventoryRow
	if err := s.db.SelectContext(ctx, &inventory, `SELECT product_id, quantity_on_hand, warehouse_location, last_counted, reserved_quantity FROM inventory`); err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	for _, r := range inventory {
		lastCounted, err := parseDate(r.LastCounted)
		if err != nil {
			return nil, fmt.Errorf("inventory %d: %w", r.ProductID, err)
		}
		snap.Inventory = append(snap.Inventory, domain.InventoryRecord{
			ProductID:         r.ProductID,
			QuantityOnHand:    r.QuantityOnHand,
			ReservedQuantity:  r.ReservedQuantity,
			WarehouseLocation: r.WarehouseLocation,
			LastCounted:       lastCounted,
		})
	}

	var sales []transactionRow
	if err := s.db.SelectContext(ctx, &sales, `SELECT transaction_id, product_id, transaction_date, quantity_sold, sale_amount, customer_type FROM sales_transactions`); err != nil {
		return nil, fmt.Errorf("load sales transactions: %w", err)
	}
	for _, r := range sales {
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("sales transaction %d: %w", r.ID, err)
		}
		snap.Sales = append(snap.Sales, domain.SalesTransaction{
			ID:           r.ID,
			ProductID:    r.ProductID,
			Date:         date,
			QuantitySold: r.QuantitySold,
			SaleAmount:   r.SaleAmount,
			CustomerType: r.CustomerType,
		})
	}

	var orders []purchaseOrderRow
	if err := s.db.SelectContext(ctx, &orders, `SELECT po_id, product_id, supplier_id, order_date, expected_delivery_date, actual_delivery_date, quantity_ordered, unit_cost, status FROM purchase_orders`); err != nil {
		return nil, fmt.Errorf("load purchase orders: %w", err)
	}
	for _, r := range orders {
		orderDate, err := parseDate(r.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("purchase order %d: %w", r.ID, err)
		}
		expected, err := parseDate(r.ExpectedDelivery)
		if err != nil {
			return nil, fmt.Errorf("purchase order %d: %w", r.ID, err)
		}
		po := domain.PurchaseOrder{
			ID:               r.ID,
			ProductID:        r.ProductID,
			SupplierID:       r.SupplierID,
			OrderDate:        orderDate,
			ExpectedDelivery: expected,
			QuantityOrdered:  r.QuantityOrdered,
			UnitCost:         r.UnitCost,
			Status:           r.Status,
		}
		if r.ActualDelivery.Valid && r.ActualDelivery.String != "" {
			actual, err := parseDate(r.ActualDelivery.String)
			if err != nil {
				return nil, fmt.Errorf("purchase order %d: %w", r.ID, err)
			}
			po.ActualDelivery = &actual
		}
		snap.PurchaseOrders = append(snap.PurchaseOrders, po)
	}

	return snap, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
