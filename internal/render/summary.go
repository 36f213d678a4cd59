// internal/render/summary.go
package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"stocklens/internal/domain"
)

// Summary renders the headline analysis summary as plain text, suitable
// for stdout or a summary.txt artifact.
func Summary(report *domain.AnalysisReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "INVENTORY ANALYSIS SUMMARY as of %s\n", report.AsOf.Format("2006-01-02"))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	ov := report.Overview
	fmt.Fprintf(&b, "Total products:          %d\n", ov.TotalProducts)
	fmt.Fprintf(&b, "Total inventory value:   $%s\n", ov.TotalInventoryValue.StringFixed(2))
	fmt.Fprintf(&b, "Out of stock:            %d\n", ov.OutOfStock)
	fmt.Fprintf(&b, "Needing reorder:         %d\n", ov.NeedsReorder)
	fmt.Fprintf(&b, "Estimated reorder cost:  $%s\n", ov.EstimatedReorderCost.StringFixed(2))
	fmt.Fprintf(&b, "Slow-moving value:       $%s\n", ov.SlowMovingValue.StringFixed(2))
	if ov.SlowMovingValue.IsPositive() {
		// Liquidating slow movers typically recovers about 70% of cost.
		recovery := ov.SlowMovingValue.Mul(decimal.NewFromFloat(0.7))
		fmt.Fprintf(&b, "  potential recovery:    $%s at 70%% liquidation\n", recovery.StringFixed(2))
	}
	if ov.TopCategory != "" {
		fmt.Fprintf(&b, "Top category by value:   %s ($%s)\n", ov.TopCategory, ov.TopCategoryValue.StringFixed(2))
	}
	b.WriteString("\n")

	var critical, urgent, warning int
	for _, a := range report.Stockouts {
		switch a.Level {
		case domain.AlertCritical:
			critical++
		case domain.AlertUrgent:
			urgent++
		case domain.AlertWarning:
			warning++
		}
	}
	fmt.Fprintf(&b, "Stockout alerts:         %d (critical %d, urgent %d, warning %d)\n",
		len(report.Stockouts), critical, urgent, warning)

	counts := map[domain.ABCClass]int{}
	for _, it := range report.ABC {
		counts[it.Class]++
	}
	fmt.Fprintf(&b, "ABC classes:             A=%d B=%d C=%d\n",
		counts[domain.ClassA], counts[domain.ClassB], counts[domain.ClassC])

	if n := len(report.Reorders); n > 0 {
		fmt.Fprintf(&b, "\nTop reorder priorities:\n")
		for i, rec := range report.Reorders {
			if i == 5 {
				break
			}
			days := "no recent sales"
			if rec.DaysOfStock != nil {
				days = fmt.Sprintf("%.1f days of stock", *rec.DaysOfStock)
			}
			fmt.Fprintf(&b, "  %d. %s (%s): order %d ($%s), %s\n",
				i+1, rec.ProductName, rec.SKU, rec.RecommendedQty, rec.EstimatedCost.StringFixed(2), days)
		}
	}

	return b.String()
}
