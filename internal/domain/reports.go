// internal/domain/reports.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertLevel classifies how badly a product is understocked.
type AlertLevel string

const (
	AlertCritical AlertLevel = "CRITICAL"
	AlertUrgent   AlertLevel = "URGENT"
	AlertWarning  AlertLevel = "WARNING"
)

// Rank returns the sort rank of the level, most severe first.
func (l AlertLevel) Rank() int {
	switch l {
	case AlertCritical:
		return 1
	case AlertUrgent:
		return 2
	case AlertWarning:
		return 3
	}
	return 4
}

// ABCClass is the Pareto value class of a product.
type ABCClass string

const (
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"
)

// NoVelocityDays is how renderers print days-of-stock for products with
// no sales in the trailing window. The report itself carries a nil
// DaysOfStock for those rows; 999 is only a display convention.
const NoVelocityDays = 999

// StockoutAlert is one row of the stockout report. Only products below
// their reorder point appear.
type StockoutAlert struct {
	ProductID      int64      `json:"product_id"`
	SKU            string     `json:"sku"`
	ProductName    string     `json:"product_name"`
	Category       string     `json:"category"`
	SupplierName   string     `json:"supplier_name"`
	QuantityOnHand int        `json:"quantity_on_hand"`
	Available      int        `json:"available"`
	SafetyStock    int        `json:"safety_stock"`
	ReorderPoint   int        `json:"reorder_point"`
	Level          AlertLevel `json:"alert_level"`
}

// ABCItem is one row of the ABC classification, ordered by line value
// descending.
type ABCItem struct {
	ProductID       int64           `json:"product_id"`
	SKU             string          `json:"sku"`
	ProductName     string          `json:"product_name"`
	Category        string          `json:"category"`
	LineValue       decimal.Decimal `json:"inventory_value"`
	CumulativeValue decimal.Decimal `json:"cumulative_value"`
	CumulativePct   float64         `json:"cumulative_pct"`
	Class           ABCClass        `json:"abc_class"`
}

// CategoryTurnover is one row of the turnover report. TurnoverRatio is
// nil when the category holds no inventory value; DaysOutstanding is nil
// whenever the ratio is nil or zero.
type CategoryTurnover struct {
	Category        string          `json:"category"`
	COGS            decimal.Decimal `json:"cogs"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	TurnoverRatio   *float64        `json:"turnover_ratio"`
	DaysOutstanding *float64        `json:"days_inventory_outstanding"`
}

// ReorderRecommendation is one row of the reorder report, most urgent
// first. DaysOfStock is nil when the product had no sales in the
// trailing window (NoRecentSales is then true).
type ReorderRecommendation struct {
	ProductID       int64           `json:"product_id"`
	SKU             string          `json:"sku"`
	ProductName     string          `json:"product_name"`
	Category        string          `json:"category"`
	SupplierName    string          `json:"supplier_name"`
	LeadTimeDays    int             `json:"lead_time_days"`
	QuantityOnHand  int             `json:"quantity_on_hand"`
	SafetyStock     int             `json:"safety_stock"`
	ReorderPoint    int             `json:"reorder_point"`
	AvgDailySales   float64         `json:"avg_daily_sales"`
	DaysOfStock     *float64        `json:"days_of_stock_remaining"`
	NoRecentSales   bool            `json:"no_recent_sales"`
	RecommendedQty  int             `json:"recommended_qty"`
	EstimatedCost   decimal.Decimal `json:"estimated_cost"`
}

// SupplierPerformance is one row of the supplier report. The averaged
// fields are nil when the supplier has no orders (or, for AvgDelayDays,
// no delivered orders).
type SupplierPerformance struct {
	SupplierID             int64            `json:"supplier_id"`
	SupplierName           string           `json:"supplier_name"`
	Country                string           `json:"country"`
	ReliabilityScore       float64          `json:"reliability_score"`
	TotalOrders            int              `json:"total_orders"`
	AvgOrderValue          *decimal.Decimal `json:"avg_order_value"`
	OnTimeDeliveryPct      *float64         `json:"on_time_delivery_pct"`
	AvgDelayDays           *float64         `json:"avg_delay_days"`
	ProductsSupplied       int              `json:"products_supplied"`
	ProductsNeedingReorder int              `json:"products_needing_reorder"`
}

// Overview is the headline summary across the whole snapshot.
type Overview struct {
	TotalProducts        int             `json:"total_products"`
	TotalInventoryValue  decimal.Decimal `json:"total_inventory_value"`
	OutOfStock           int             `json:"out_of_stock"`
	NeedsReorder         int             `json:"needs_reorder"`
	EstimatedReorderCost decimal.Decimal `json:"estimated_reorder_cost"`
	SlowMovingValue      decimal.Decimal `json:"slow_moving_value"`
	TopCategory          string          `json:"top_category"`
	TopCategoryValue     decimal.Decimal `json:"top_category_value"`
}

// AnalysisReport bundles the output of one engine pass.
type AnalysisReport struct {
	AsOf      time.Time               `json:"as_of"`
	Stockouts []StockoutAlert         `json:"stockout_alerts"`
	ABC       []ABCItem               `json:"abc_classification"`
	Turnover  []CategoryTurnover      `json:"turnover_by_category"`
	Reorders  []ReorderRecommendation `json:"reorder_recommendations"`
	Suppliers []SupplierPerformance   `json:"supplier_performance"`
	Overview  Overview                `json:"overview"`
}
