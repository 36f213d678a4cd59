// internal/seed/generator.go
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

// Config controls the shape of a generated dataset. The same seed and
// reference time always produce the same snapshot.
type Config struct {
	Products       int
	Suppliers      int
	Transactions   int
	PurchaseOrders int
	Seed           int64
	Now            time.Time
}

// DefaultConfig matches the reference dataset proportions.
func DefaultConfig(now time.Time) Config {
	return Config{
		Products:       150,
		Suppliers:      20,
		Transactions:   800,
		PurchaseOrders: 100,
		Seed:           42,
		Now:            now,
	}
}

var categories = []string{"Electronics", "Clothing", "Food", "Home & Garden", "Sports", "Automotive"}

var countries = []string{"USA", "China", "Germany", "Japan", "Mexico", "Vietnam"}

var warehouses = []string{"Warehouse A", "Warehouse B", "Warehouse C"}

var customerTypes = []string{"Retail", "Wholesale", "Online"}

var companyStems = []string{
	"Apex", "Northwind", "Cascade", "Meridian", "Summit", "Harbor",
	"Pioneer", "Vanguard", "Orion", "Atlas", "Beacon", "Crestline",
}

var companySuffixes = []string{"Trading", "Supply Co", "Industries", "Logistics", "Group", "Partners"}

var productWords = []string{
	"Deluxe", "Compact", "Premium", "Classic", "Turbo", "Eco",
	"Pro", "Lite", "Max", "Prime", "Ultra", "Basic",
}

// Generate builds a synthetic snapshot: suppliers first, then products
// referencing them, then inventory at realistic health levels (15% near
// stockout, 15% below safety stock, 20% below reorder point, 50%
// healthy), six months of sales, and purchase orders with an 85%
// on-time delivery rate.
func Generate(cfg Config) *domain.Snapshot {
	rng := rand.New(rand.NewSource(cfg.Seed))
	snap := &domain.Snapshot{}

	for i := 0; i < cfg.Suppliers; i++ {
		snap.Suppliers = append(snap.Suppliers, domain.Supplier{
			ID:               int64(i + 1),
			Name:             fmt.Sprintf("%s %s", companyStems[rng.Intn(len(companyStems))], companySuffixes[rng.Intn(len(companySuffixes))]),
			Country:          countries[rng.Intn(len(countries))],
			ReliabilityScore: roundTo(3.0+rng.Float64()*2.0, 1),
			AvgLeadTimeDays:  7 + rng.Intn(24),
		})
	}

	for i := 0; i < cfg.Products; i++ {
		category := categories[rng.Intn(len(categories))]
		safetyStock := 10 + rng.Intn(41)
		reorderPoint := safetyStock + 10 + rng.Intn(91-safetyStock)
		snap.Products = append(snap.Products, domain.Product{
			ID:              int64(i + 1),
			SKU:             fmt.Sprintf("SKU-%06d", 100000+rng.Intn(900000)),
			Name:            fmt.Sprintf("%s %s %s", category, productWords[rng.Intn(len(productWords))], productWords[rng.Intn(len(productWords))]),
			Category:        category,
			UnitCost:        randMoney(rng, 5, 200),
			UnitPrice:       randMoney(rng, 10, 400),
			ReorderPoint:    reorderPoint,
			ReorderQuantity: 50 + rng.Intn(151),
			SafetyStock:     safetyStock,
			SupplierID:      int64(1 + rng.Intn(cfg.Suppliers)),
			LeadTimeDays:    7 + rng.Intn(24),
		})
	}

	for _, p := range snap.Products {
		var qty int
		switch scenario := rng.Float64(); {
		case scenario < 0.15: // critical: out of stock or nearly
			qty = rng.Intn(6)
		case scenario < 0.30: // below safety stock
			qty = 1 + rng.Intn(maxInt(p.SafetyStock, 1))
		case scenario < 0.50: // below reorder point
			qty = p.SafetyStock + rng.Intn(maxInt(p.ReorderPoint-p.SafetyStock, 1))
		default: // healthy
			qty = p.ReorderPoint + rng.Intn(maxInt(p.ReorderPoint*2, 1))
		}

		reserved := 0
		if qty > 0 {
			reserved = rng.Intn(minInt(10, qty) + 1)
		}

		snap.Inventory = append(snap.Inventory, domain.InventoryRecord{
			ProductID:         p.ID,
			QuantityOnHand:    qty,
			ReservedQuantity:  reserved,
			WarehouseLocation: warehouses[rng.Intn(len(warehouses))],
			LastCounted:       dateOnly(cfg.Now.AddDate(0, 0, -rng.Intn(31))),
		})
	}

	salesStart := cfg.Now.AddDate(0, 0, -180)
	for i := 0; i < cfg.Transactions; i++ {
		p := snap.Products[rng.Intn(len(snap.Products))]
		qty := 1 + rng.Intn(20)
		snap.Sales = append(snap.Sales, domain.SalesTransaction{
			ID:           int64(i + 1),
			ProductID:    p.ID,
			Date:         dateOnly(salesStart.AddDate(0, 0, rng.Intn(181))),
			QuantitySold: qty,
			SaleAmount:   p.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
			CustomerType: customerTypes[rng.Intn(len(customerTypes))],
		})
	}

	for i := 0; i < cfg.PurchaseOrders; i++ {
		p := snap.Products[rng.Intn(len(snap.Products))]
		orderDate := dateOnly(cfg.Now.AddDate(0, 0, -rng.Intn(181)))
		expected := orderDate.AddDate(0, 0, p.LeadTimeDays)

		actual := expected
		if rng.Float64() >= 0.85 {
			actual = expected.AddDate(0, 0, 1+rng.Intn(10))
		}

		snap.PurchaseOrders = append(snap.PurchaseOrders, domain.PurchaseOrder{
			ID:               int64(i + 1),
			ProductID:        p.ID,
			SupplierID:       p.SupplierID,
			OrderDate:        orderDate,
			ExpectedDelivery: expected,
			ActualDelivery:   &actual,
			QuantityOrdered:  p.ReorderQuantity,
			UnitCost:         p.UnitCost,
			Status:           "Delivered",
		})
	}

	return snap
}

func randMoney(rng *rand.Rand, lo, hi int64) decimal.Decimal {
	cents := lo*100 + rng.Int63n((hi-lo)*100+1)
	return decimal.New(cents, -2)
}

func roundTo(v float64, decimals int) float64 {
	d := decimal.NewFromFloat(v).Round(int32(decimals))
	f, _ := d.Float64()
	return f
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
