// internal/engine/turnover.go
package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

const daysPerYear = 365.0

// turnoverByCategory reports cost of goods sold against current
// inventory value for every category that appears in either grouping.
// A category with no inventory value gets a nil ratio rather than a
// division fault, and a zero or nil ratio leaves days outstanding nil.
func (e *Engine) turnoverByCategory(idx *index) []domain.CategoryTurnover {
	cogs := make(map[string]decimal.Decimal)
	invValue := make(map[string]decimal.Decimal)

	for _, tx := range idx.snap.Sales {
		p := idx.productByID[tx.ProductID]
		line := p.UnitCost.Mul(decimal.NewFromInt(int64(tx.QuantitySold)))
		cogs[p.Category] = cogs[p.Category].Add(line)
	}
	for _, inv := range idx.snap.Inventory {
		p := idx.productByID[inv.ProductID]
		line := p.UnitCost.Mul(decimal.NewFromInt(int64(inv.QuantityOnHand)))
		invValue[p.Category] = invValue[p.Category].Add(line)
	}

	categories := make(map[string]struct{}, len(cogs)+len(invValue))
	for c := range cogs {
		categories[c] = struct{}{}
	}
	for c := range invValue {
		categories[c] = struct{}{}
	}

	rows := make([]domain.CategoryTurnover, 0, len(categories))
	for c := range categories {
		row := domain.CategoryTurnover{
			Category:       c,
			COGS:           cogs[c],
			InventoryValue: invValue[c],
		}
		if !row.InventoryValue.IsZero() {
			ratio, _ := row.COGS.Div(row.InventoryValue).Float64()
			row.TurnoverRatio = &ratio
			if ratio != 0 {
				days := daysPerYear / ratio
				row.DaysOutstanding = &days
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.TurnoverRatio != nil && b.TurnoverRatio != nil:
			if *a.TurnoverRatio != *b.TurnoverRatio {
				return *a.TurnoverRatio > *b.TurnoverRatio
			}
		case a.TurnoverRatio != nil:
			return true
		case b.TurnoverRatio != nil:
			return false
		}
		return a.Category < b.Category
	})

	return rows
}
