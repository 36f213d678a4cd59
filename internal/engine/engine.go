// internal/engine/engine.go
package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"stocklens/internal/domain"
)

// DefaultSalesWindowDays is the trailing window used for sales velocity
// when the engine is built with New.
const DefaultSalesWindowDays = 90

// Engine computes the five inventory health reports from an immutable
// snapshot. It holds no mutable state; the same engine value can be
// shared across goroutines.
type Engine struct {
	salesWindowDays int
}

// New returns an engine with the default trailing sales window.
func New() *Engine {
	return &Engine{salesWindowDays: DefaultSalesWindowDays}
}

// NewWithWindow returns an engine with a custom trailing sales window.
func NewWithWindow(days int) *Engine {
	if days <= 0 {
		days = DefaultSalesWindowDays
	}
	return &Engine{salesWindowDays: days}
}

// Run validates the snapshot's references, then produces all five
// report tables plus the overview. The computations are independent and
// run concurrently; asOf anchors the trailing sales window so a pass is
// fully deterministic for a given snapshot and timestamp.
func (e *Engine) Run(ctx context.Context, snap *domain.Snapshot, asOf time.Time) (*domain.AnalysisReport, error) {
	idx, err := buildIndex(snap)
	if err != nil {
		return nil, err
	}

	report := &domain.AnalysisReport{AsOf: asOf}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Stockouts = e.stockoutAlerts(idx)
		return nil
	})
	g.Go(func() error {
		report.ABC = e.abcClassification(idx)
		return nil
	})
	g.Go(func() error {
		report.Turnover = e.turnoverByCategory(idx)
		return nil
	})
	g.Go(func() error {
		report.Reorders = e.reorderRecommendations(idx, asOf)
		return nil
	})
	g.Go(func() error {
		report.Suppliers = e.supplierPerformance(idx)
		return nil
	})
	g.Go(func() error {
		report.Overview = e.overview(idx, asOf)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

// index holds the id-keyed lookups the report computations join on.
type index struct {
	snap               *domain.Snapshot
	productByID        map[int64]domain.Product
	supplierByID       map[int64]domain.Supplier
	inventoryByProduct map[int64]domain.InventoryRecord
}

// buildIndex maps the snapshot's join keys and rejects any record whose
// product or supplier reference does not resolve. A broken reference
// fails the whole pass; the joins downstream assume integrity.
func buildIndex(snap *domain.Snapshot) (*index, error) {
	idx := &index{
		snap:               snap,
		productByID:        make(map[int64]domain.Product, len(snap.Products)),
		supplierByID:       make(map[int64]domain.Supplier, len(snap.Suppliers)),
		inventoryByProduct: make(map[int64]domain.InventoryRecord, len(snap.Inventory)),
	}

	for _, s := range snap.Suppliers {
		idx.supplierByID[s.ID] = s
	}
	for _, p := range snap.Products {
		if _, ok := idx.supplierByID[p.SupplierID]; !ok {
			return nil, &domain.ReferentialIntegrityError{Collection: "products", Field: "supplier_id", ID: p.SupplierID}
		}
		idx.productByID[p.ID] = p
	}
	for _, r := range snap.Inventory {
		if _, ok := idx.productByID[r.ProductID]; !ok {
			return nil, &domain.ReferentialIntegrityError{Collection: "inventory", Field: "product_id", ID: r.ProductID}
		}
		idx.inventoryByProduct[r.ProductID] = r
	}
	for _, tx := range snap.Sales {
		if _, ok := idx.productByID[tx.ProductID]; !ok {
			return nil, &domain.ReferentialIntegrityError{Collection: "sales_transactions", Field: "product_id", ID: tx.ProductID}
		}
	}
	for _, po := range snap.PurchaseOrders {
		if _, ok := idx.supplierByID[po.SupplierID]; !ok {
			return nil, &domain.ReferentialIntegrityError{Collection: "purchase_orders", Field: "supplier_id", ID: po.SupplierID}
		}
		if _, ok := idx.productByID[po.ProductID]; !ok {
			return nil, &domain.ReferentialIntegrityError{Collection: "purchase_orders", Field: "product_id", ID: po.ProductID}
		}
	}

	return idx, nil
}

// windowStart returns the exclusive lower bound of the trailing sales
// window ending at asOf.
func (e *Engine) windowStart(asOf time.Time) time.Time {
	return asOf.AddDate(0, 0, -e.salesWindowDays)
}

// inWindow reports whether a transaction date falls inside the trailing
// window (start exclusive, asOf inclusive).
func (e *Engine) inWindow(date, asOf time.Time) bool {
	return date.After(e.windowStart(asOf)) && !date.After(asOf)
}
