// internal/engine/overview.go
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

// slowMoverThreshold is the trailing-window unit-sales count below
// which stocked inventory counts as slow-moving capital.
const slowMoverThreshold = 5

// overview folds the snapshot into the headline numbers shown at the
// top of the analysis summary.
func (e *Engine) overview(idx *index, asOf time.Time) domain.Overview {
	ov := domain.Overview{
		TotalProducts:        len(idx.snap.Products),
		TotalInventoryValue:  decimal.Zero,
		EstimatedReorderCost: decimal.Zero,
		SlowMovingValue:      decimal.Zero,
		TopCategoryValue:     decimal.Zero,
	}

	soldInWindow := make(map[int64]int)
	for _, tx := range idx.snap.Sales {
		if e.inWindow(tx.Date, asOf) {
			soldInWindow[tx.ProductID] += tx.QuantitySold
		}
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, inv := range idx.snap.Inventory {
		p := idx.productByID[inv.ProductID]
		line := p.UnitCost.Mul(decimal.NewFromInt(int64(inv.QuantityOnHand)))
		ov.TotalInventoryValue = ov.TotalInventoryValue.Add(line)
		byCategory[p.Category] = byCategory[p.Category].Add(line)

		if inv.QuantityOnHand == 0 {
			ov.OutOfStock++
		}
		if inv.QuantityOnHand < p.ReorderPoint {
			ov.NeedsReorder++
			cost := p.UnitCost.Mul(decimal.NewFromInt(int64(p.ReorderQuantity)))
			ov.EstimatedReorderCost = ov.EstimatedReorderCost.Add(cost)
		}
		if inv.QuantityOnHand > 0 && soldInWindow[inv.ProductID] < slowMoverThreshold {
			ov.SlowMovingValue = ov.SlowMovingValue.Add(line)
		}
	}

	for c, v := range byCategory {
		if v.Cmp(ov.TopCategoryValue) > 0 || (v.Cmp(ov.TopCategoryValue) == 0 && ov.TopCategory != "" && c < ov.TopCategory) {
			ov.TopCategory = c
			ov.TopCategoryValue = v
		}
	}

	return ov
}
