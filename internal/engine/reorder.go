// internal/engine/reorder.go
package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

// reorderRecommendations proposes an order quantity for every product
// below its reorder point. The recommendation tops the standard reorder
// quantity up to safety stock when stock has fallen below it. Urgency
// comes from days of stock at the trailing-window sales velocity;
// products with no recent sales carry a nil DaysOfStock and sort last.
func (e *Engine) reorderRecommendations(idx *index, asOf time.Time) []domain.ReorderRecommendation {
	sumQty := make(map[int64]int)
	txCount := make(map[int64]int)
	for _, tx := range idx.snap.Sales {
		if !e.inWindow(tx.Date, asOf) {
			continue
		}
		sumQty[tx.ProductID] += tx.QuantitySold
		txCount[tx.ProductID]++
	}

	recs := make([]domain.ReorderRecommendation, 0)
	for _, p := range idx.snap.Products {
		inv, ok := idx.inventoryByProduct[p.ID]
		if !ok {
			continue
		}
		if inv.QuantityOnHand >= p.ReorderPoint {
			continue
		}

		qty := p.ReorderQuantity
		if inv.QuantityOnHand < p.SafetyStock {
			qty += p.SafetyStock - inv.QuantityOnHand
		}

		rec := domain.ReorderRecommendation{
			ProductID:      p.ID,
			SKU:            p.SKU,
			ProductName:    p.Name,
			Category:       p.Category,
			SupplierName:   idx.supplierByID[p.SupplierID].Name,
			LeadTimeDays:   p.LeadTimeDays,
			QuantityOnHand: inv.QuantityOnHand,
			SafetyStock:    p.SafetyStock,
			ReorderPoint:   p.ReorderPoint,
			RecommendedQty: qty,
			EstimatedCost:  p.UnitCost.Mul(decimal.NewFromInt(int64(qty))),
		}

		if n := txCount[p.ID]; n > 0 {
			rec.AvgDailySales = float64(sumQty[p.ID]) / float64(n)
		}
		if rec.AvgDailySales > 0 {
			days := float64(inv.QuantityOnHand) / rec.AvgDailySales
			rec.DaysOfStock = &days
		} else {
			rec.NoRecentSales = true
		}

		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		switch {
		case a.DaysOfStock != nil && b.DaysOfStock != nil:
			if *a.DaysOfStock != *b.DaysOfStock {
				return *a.DaysOfStock < *b.DaysOfStock
			}
		case a.DaysOfStock != nil:
			return true
		case b.DaysOfStock != nil:
			return false
		}
		return a.ProductID < b.ProductID
	})

	return recs
}
