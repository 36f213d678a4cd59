// internal/engine/supplier.go
package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

// supplierPerformance aggregates delivery history per supplier. Every
// supplier appears, including ones with no purchase orders; their
// averaged fields stay nil and sort last. Orders still in transit count
// against on-time delivery but are excluded from the delay average.
func (e *Engine) supplierPerformance(idx *index) []domain.SupplierPerformance {
	ordersBySupplier := make(map[int64][]domain.PurchaseOrder)
	for _, po := range idx.snap.PurchaseOrders {
		ordersBySupplier[po.SupplierID] = append(ordersBySupplier[po.SupplierID], po)
	}

	productsBySupplier := make(map[int64][]domain.Product)
	for _, p := range idx.snap.Products {
		productsBySupplier[p.SupplierID] = append(productsBySupplier[p.SupplierID], p)
	}

	rows := make([]domain.SupplierPerformance, 0, len(idx.snap.Suppliers))
	for _, s := range idx.snap.Suppliers {
		row := domain.SupplierPerformance{
			SupplierID:       s.ID,
			SupplierName:     s.Name,
			Country:          s.Country,
			ReliabilityScore: s.ReliabilityScore,
		}

		orders := ordersBySupplier[s.ID]
		row.TotalOrders = len(orders)
		if len(orders) > 0 {
			orderValue := decimal.Zero
			onTime := 0
			delivered := 0
			delaySum := 0.0
			for _, po := range orders {
				orderValue = orderValue.Add(po.UnitCost.Mul(decimal.NewFromInt(int64(po.QuantityOrdered))))
				if po.OnTime() {
					onTime++
				}
				if po.Delivered() {
					delivered++
					delaySum += po.ActualDelivery.Sub(po.ExpectedDelivery).Hours() / 24
				}
			}

			avgValue := orderValue.Div(decimal.NewFromInt(int64(len(orders))))
			row.AvgOrderValue = &avgValue

			pct := 100 * float64(onTime) / float64(len(orders))
			row.OnTimeDeliveryPct = &pct

			if delivered > 0 {
				delay := delaySum / float64(delivered)
				row.AvgDelayDays = &delay
			}
		}

		supplied := productsBySupplier[s.ID]
		row.ProductsSupplied = len(supplied)
		for _, p := range supplied {
			if inv, ok := idx.inventoryByProduct[p.ID]; ok && inv.QuantityOnHand < p.ReorderPoint {
				row.ProductsNeedingReorder++
			}
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.OnTimeDeliveryPct != nil && b.OnTimeDeliveryPct != nil:
			if *a.OnTimeDeliveryPct != *b.OnTimeDeliveryPct {
				return *a.OnTimeDeliveryPct > *b.OnTimeDeliveryPct
			}
		case a.OnTimeDeliveryPct != nil:
			return true
		case b.OnTimeDeliveryPct != nil:
			return false
		}
		if a.SupplierName != b.SupplierName {
			return a.SupplierName < b.SupplierName
		}
		return a.SupplierID < b.SupplierID
	})

	return rows
}
