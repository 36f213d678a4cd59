// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry with its replenishment parameters.
type Product struct {
	ID              int64           `json:"product_id" db:"product_id"`
	SKU             string          `json:"sku" db:"sku"`
	Name            string          `json:"product_name" db:"product_name"`
	Category        string          `json:"category" db:"category"`
	UnitCost        decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	UnitPrice       decimal.Decimal `json:"unit_price" db:"unit_price"`
	ReorderPoint    int             `json:"reorder_point" db:"reorder_point"`
	ReorderQuantity int             `json:"reorder_quantity" db:"reorder_quantity"`
	SafetyStock     int             `json:"safety_stock" db:"safety_stock"`
	SupplierID      int64           `json:"supplier_id" db:"supplier_id"`
	LeadTimeDays    int             `json:"lead_time_days" db:"lead_time_days"`
}

// InventoryRecord is the current stock position for a single product.
type InventoryRecord struct {
	ProductID         int64     `json:"product_id" db:"product_id"`
	QuantityOnHand    int       `json:"quantity_on_hand" db:"quantity_on_hand"`
	ReservedQuantity  int       `json:"reserved_quantity" db:"reserved_quantity"`
	WarehouseLocation string    `json:"warehouse_location" db:"warehouse_location"`
	LastCounted       time.Time `json:"last_counted" db:"last_counted"`
}

// Available returns on-hand minus reserved. It may be negative when a
// product is over-reserved; callers must not assume it is clamped.
func (r InventoryRecord) Available() int {
	return r.QuantityOnHand - r.ReservedQuantity
}

// Supplier is a vendor master record. ReliabilityScore is externally
// sourced, not derived by the engine.
type Supplier struct {
	ID               int64   `json:"supplier_id" db:"supplier_id"`
	Name             string  `json:"supplier_name" db:"supplier_name"`
	Country          string  `json:"country" db:"country"`
	ReliabilityScore float64 `json:"reliability_score" db:"reliability_score"`
	AvgLeadTimeDays  int     `json:"avg_lead_time" db:"avg_lead_time"`
}

// SalesTransaction is a single historical sale line.
type SalesTransaction struct {
	ID           int64           `json:"transaction_id" db:"transaction_id"`
	ProductID    int64           `json:"product_id" db:"product_id"`
	Date         time.Time       `json:"transaction_date" db:"transaction_date"`
	QuantitySold int             `json:"quantity_sold" db:"quantity_sold"`
	SaleAmount   decimal.Decimal `json:"sale_amount" db:"sale_amount"`
	CustomerType string          `json:"customer_type" db:"customer_type"`
}

// PurchaseOrder is a replenishment order placed with a supplier.
// ActualDelivery is nil while the order is still in transit.
type PurchaseOrder struct {
	ID               int64           `json:"po_id" db:"po_id"`
	ProductID        int64           `json:"product_id" db:"product_id"`
	SupplierID       int64           `json:"supplier_id" db:"supplier_id"`
	OrderDate        time.Time       `json:"order_date" db:"order_date"`
	ExpectedDelivery time.Time       `json:"expected_delivery_date" db:"expected_delivery_date"`
	ActualDelivery   *time.Time      `json:"actual_delivery_date" db:"actual_delivery_date"`
	QuantityOrdered  int             `json:"quantity_ordered" db:"quantity_ordered"`
	UnitCost         decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	Status           string          `json:"status" db:"status"`
}

// Delivered reports whether the order has arrived.
func (po PurchaseOrder) Delivered() bool {
	return po.ActualDelivery != nil
}

// OnTime reports whether the order arrived on or before its expected
// date. Undelivered orders are never on time.
func (po PurchaseOrder) OnTime() bool {
	return po.ActualDelivery != nil && !po.ActualDelivery.After(po.ExpectedDelivery)
}

// Snapshot is the immutable input to a single analysis pass: the five
// record collections loaded whole from the backing store. The engine
// never mutates a snapshot.
type Snapshot struct {
	Products       []Product          `json:"products"`
	Inventory      []InventoryRecord  `json:"inventory"`
	Suppliers      []Supplier         `json:"suppliers"`
	Sales          []SalesTransaction `json:"sales_transactions"`
	PurchaseOrders []PurchaseOrder    `json:"purchase_orders"`
}
