// internal/engine/stockout.go
package engine

import (
	"sort"

	"stocklens/internal/domain"
)

// stockoutAlerts emits one row per product below its reorder point.
// Levels are evaluated in order: out of stock, below safety stock,
// below reorder point. Products at or above reorder point produce no
// row at all.
func (e *Engine) stockoutAlerts(idx *index) []domain.StockoutAlert {
	alerts := make([]domain.StockoutAlert, 0)

	for _, p := range idx.snap.Products {
		inv, ok := idx.inventoryByProduct[p.ID]
		if !ok {
			continue
		}
		if inv.QuantityOnHand >= p.ReorderPoint {
			continue
		}

		level := domain.AlertWarning
		switch {
		case inv.QuantityOnHand == 0:
			level = domain.AlertCritical
		case inv.QuantityOnHand < p.SafetyStock:
			level = domain.AlertUrgent
		}

		alerts = append(alerts, domain.StockoutAlert{
			ProductID:      p.ID,
			SKU:            p.SKU,
			ProductName:    p.Name,
			Category:       p.Category,
			SupplierName:   idx.supplierByID[p.SupplierID].Name,
			QuantityOnHand: inv.QuantityOnHand,
			Available:      inv.Available(),
			SafetyStock:    p.SafetyStock,
			ReorderPoint:   p.ReorderPoint,
			Level:          level,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.Level.Rank() != b.Level.Rank() {
			return a.Level.Rank() < b.Level.Rank()
		}
		if a.QuantityOnHand != b.QuantityOnHand {
			return a.QuantityOnHand < b.QuantityOnHand
		}
		return a.ProductID < b.ProductID
	})

	return alerts
}
