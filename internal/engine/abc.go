// internal/engine/abc.go
package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

var (
	classABoundary = decimal.NewFromInt(80)
	classBBoundary = decimal.NewFromInt(95)
	hundred        = decimal.NewFromInt(100)
)

// abcClassification ranks products by on-hand value and assigns Pareto
// classes from the running cumulative share: A up to 80%, B up to 95%,
// C beyond. Ties on line value break by product id so the cumulative
// sum, and therefore the classes, are deterministic.
func (e *Engine) abcClassification(idx *index) []domain.ABCItem {
	items := make([]domain.ABCItem, 0, len(idx.snap.Inventory))

	for _, p := range idx.snap.Products {
		inv, ok := idx.inventoryByProduct[p.ID]
		if !ok {
			continue
		}
		items = append(items, domain.ABCItem{
			ProductID:   p.ID,
			SKU:         p.SKU,
			ProductName: p.Name,
			Category:    p.Category,
			LineValue:   p.UnitCost.Mul(decimal.NewFromInt(int64(inv.QuantityOnHand))),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if c := items[i].LineValue.Cmp(items[j].LineValue); c != 0 {
			return c > 0
		}
		return items[i].ProductID < items[j].ProductID
	})

	grand := decimal.Zero
	for _, it := range items {
		grand = grand.Add(it.LineValue)
	}

	running := decimal.Zero
	for i := range items {
		running = running.Add(items[i].LineValue)
		items[i].CumulativeValue = running

		// An empty or zero-value inventory has no meaningful shares;
		// everything lands in class A at 0%.
		pct := decimal.Zero
		if !grand.IsZero() {
			pct = running.Div(grand).Mul(hundred)
		}
		items[i].CumulativePct, _ = pct.Float64()

		switch {
		case pct.Cmp(classABoundary) <= 0:
			items[i].Class = domain.ClassA
		case pct.Cmp(classBBoundary) <= 0:
			items[i].Class = domain.ClassB
		default:
			items[i].Class = domain.ClassC
		}
	}

	return items
}
