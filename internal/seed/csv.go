// internal/seed/csv.go
package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

const dateLayout = "2006-01-02"

// File names follow the reference dataset layout.
const (
	productsFile  = "products.csv"
	suppliersFile = "suppliers.csv"
	inventoryFile = "inventory.csv"
	salesFile     = "sales_transactions.csv"
	ordersFile    = "purchase_orders.csv"
)

// WriteCSVDir writes the five collections as CSV files under dir,
// creating it if needed.
func WriteCSVDir(snap *domain.Snapshot, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	writers := []struct {
		name   string
		header []string
		rows   func() [][]string
	}{
		{
			suppliersFile,
			[]string{"supplier_id", "supplier_name", "country", "reliability_score", "avg_lead_time"},
			func() [][]string {
				rows := make([][]string, 0, len(snap.Suppliers))
				for _, s := range snap.Suppliers {
					rows = append(rows, []string{
						formatInt64(s.ID), s.Name, s.Country,
						strconv.FormatFloat(s.ReliabilityScore, 'f', 1, 64),
						strconv.Itoa(s.AvgLeadTimeDays),
					})
				}
				return rows
			},
		},
		{
			productsFile,
			[]string{"product_id", "sku", "product_name", "category", "unit_cost", "unit_price", "reorder_point", "reorder_quantity", "safety_stock", "supplier_id", "lead_time_days"},
			func() [][]string {
				rows := make([][]string, 0, len(snap.Products))
				for _, p := range snap.Products {
					rows = append(rows, []string{
						formatInt64(p.ID), p.SKU, p.Name, p.Category,
						p.UnitCost.String(), p.UnitPrice.String(),
						strconv.Itoa(p.ReorderPoint), strconv.Itoa(p.ReorderQuantity),
						strconv.Itoa(p.SafetyStock), formatInt64(p.SupplierID),
						strconv.Itoa(p.LeadTimeDays),
					})
				}
				return rows
			},
		},
		{
			inventoryFile,
			[]string{"product_id", "quantity_on_hand", "warehouse_location", "last_counted", "reserved_quantity"},
			func() [][]string {
				rows := make([][]string, 0, len(snap.Inventory))
				for _, r := range snap.Inventory {
					rows = append(rows, []string{
						formatInt64(r.ProductID), strconv.Itoa(r.QuantityOnHand),
						r.WarehouseLocation, r.LastCounted.Format(dateLayout),
						strconv.Itoa(r.ReservedQuantity),
					})
				}
				return rows
			},
		},
		{
			salesFile,
			[]string{"transaction_id", "product_id", "transaction_date", "quantity_sold", "sale_amount", "customer_type"},
			func() [][]string {
				rows := make([][]string, 0, len(snap.Sales))
				for _, tx := range snap.Sales {
					rows = append(rows, []string{
						formatInt64(tx.ID), formatInt64(tx.ProductID),
						tx.Date.Format(dateLayout), strconv.Itoa(tx.QuantitySold),
						tx.SaleAmount.String(), tx.CustomerType,
					})
				}
				return rows
			},
		},
		{
			ordersFile,
			[]string{"po_id", "product_id", "supplier_id", "order_date", "expected_delivery_date", "actual_delivery_date", "quantity_ordered", "unit_cost", "status"},
			func() [][]string {
				rows := make([][]string, 0, len(snap.PurchaseOrders))
				for _, po := range snap.PurchaseOrders {
					actual := ""
					if po.ActualDelivery != nil {
						actual = po.ActualDelivery.Format(dateLayout)
					}
					rows = append(rows, []string{
						formatInt64(po.ID), formatInt64(po.ProductID), formatInt64(po.SupplierID),
						po.OrderDate.Format(dateLayout), po.ExpectedDelivery.Format(dateLayout),
						actual, strconv.Itoa(po.QuantityOrdered),
						po.UnitCost.String(), po.Status,
					})
				}
				return rows
			},
		},
	}

	for _, w := range writers {
		if err := writeCSV(filepath.Join(dir, w.name), w.header, w.rows()); err != nil {
			return err
		}
	}
	return nil
}

// ReadCSVDir loads a snapshot back from the five CSV files under dir.
func ReadCSVDir(dir string) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}

	if err := readCSV(filepath.Join(dir, suppliersFile), 5, func(rec []string) error {
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return err
		}
		score, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return err
		}
		leadTime, err := strconv.Atoi(rec[4])
		if err != nil {
			return err
		}
		snap.Suppliers = append(snap.Suppliers, domain.Supplier{
			ID: id, Name: rec[1], Country: rec[2],
			ReliabilityScore: score, AvgLeadTimeDays: leadTime,
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readCSV(filepath.Join(dir, productsFile), 11, func(rec []string) error {
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return err
		}
		unitCost, err := decimal.NewFromString(rec[4])
		if err != nil {
			return err
		}
		unitPrice, err := decimal.NewFromString(rec[5])
		if err != nil {
			return err
		}
		ints, err := parseInts(rec[6], rec[7], rec[8], rec[10])
		if err != nil {
			return err
		}
		supplierID, err := strconv.ParseInt(rec[9], 10, 64)
		if err != nil {
			return err
		}
		snap.Products = append(snap.Products, domain.Product{
			ID: id, SKU: rec[1], Name: rec[2], Category: rec[3],
			UnitCost: unitCost, UnitPrice: unitPrice,
			ReorderPoint: ints[0], ReorderQuantity: ints[1], SafetyStock: ints[2],
			SupplierID: supplierID, LeadTimeDays: ints[3],
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readCSV(filepath.Join(dir, inventoryFile), 5, func(rec []string) error {
		productID, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return err
		}
		ints, err := parseInts(rec[1], rec[4])
		if err != nil {
			return err
		}
		lastCounted, err := time.Parse(dateLayout, rec[3])
		if err != nil {
			return err
		}
		snap.Inventory = append(snap.Inventory, domain.InventoryRecord{
			ProductID: productID, QuantityOnHand: ints[0],
			WarehouseLocation: rec[2], LastCounted: lastCounted,
			ReservedQuantity: ints[1],
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readCSV(filepath.Join(dir, salesFile), 6, func(rec []string) error {
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return err
		}
		productID, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return err
		}
		date, err := time.Parse(dateLayout, rec[2])
		if err != nil {
			return err
		}
		qty, err := strconv.Atoi(rec[3])
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(rec[4])
		if err != nil {
			return err
		}
		snap.Sales = append(snap.Sales, domain.SalesTransaction{
			ID: id, ProductID: productID, Date: date,
			QuantitySold: qty, SaleAmount: amount, CustomerType: rec[5],
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readCSV(filepath.Join(dir, ordersFile), 9, func(rec []string) error {
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return err
		}
		productID, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return err
		}
		supplierID, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil {
			return err
		}
		orderDate, err := time.Parse(dateLayout, rec[3])
		if err != nil {
			return err
		}
		expected, err := time.Parse(dateLayout, rec[4])
		if err != nil {
			return err
		}
		qty, err := strconv.Atoi(rec[6])
		if err != nil {
			return err
		}
		unitCost, err := decimal.NewFromString(rec[7])
		if err != nil {
			return err
		}
		po := domain.PurchaseOrder{
			ID: id, ProductID: productID, SupplierID: supplierID,
			OrderDate: orderDate, ExpectedDelivery: expected,
			QuantityOrdered: qty, UnitCost: unitCost, Status: rec[8],
		}
		if rec[5] != "" {
			actual, err := time.Parse(dateLayout, rec[5])
			if err != nil {
				return err
			}
			po.ActualDelivery = &actual
		}
		snap.PurchaseOrders = append(snap.PurchaseOrders, po)
		return nil
	}); err != nil {
		return nil, err
	}

	return snap, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func readCSV(path string, fields int, visit func(rec []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = fields

	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if err := visit(rec); err != nil {
			return fmt.Errorf("%s row %d: %w", path, i, err)
		}
	}
	return nil
}

func parseInts(vals ...string) ([]int, error) {
	out := make([]int, len(vals))
	for i, v := range vals {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}
