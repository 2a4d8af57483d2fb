package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Money Flow Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Target asset: %s\n\n", r.TargetAsset))

	// Run Summary
	sb.WriteString("## Run Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Addresses Processed | %d |\n", r.AddressesProcessed))
	sb.WriteString(fmt.Sprintf("| Sales Created | %d |\n", r.SalesCreated))
	sb.WriteString(fmt.Sprintf("| Chart Bundles Built | %d |\n", r.ChartsBuilt))
	sb.WriteString(fmt.Sprintf("| Dropped Samples | %d |\n", r.DroppedSamples))
	sb.WriteString("\n")

	// Traders
	sb.WriteString("## Traders\n\n")
	if len(r.Summaries) > 0 {
		sb.WriteString("| Address | Closed | WinRate | TotalPnL | AvgROI | Volume | Tags |\n")
		sb.WriteString("|---------|--------|---------|----------|--------|--------|------|\n")
		for _, s := range r.Summaries {
			sb.WriteString(fmt.Sprintf("| %s | %d | %.2f%% | %.4f | %.4f | %.4f | %s |\n",
				s.Address, s.ClosedPositions, s.WinRate, s.TotalPnl, s.AvgRoi,
				s.TotalVolume, strings.Join(s.Tags, ", ")))
		}
	} else {
		sb.WriteString("No traders analyzed.\n")
	}
	sb.WriteString("\n")

	// Top sales per trader
	for _, s := range r.Summaries {
		if len(s.TopSales) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("### Top Sales: %s\n\n", s.Address))
		sb.WriteString("| Asset | Qty | Cost | Proceeds | PnL | ROI | Hops |\n")
		sb.WriteString("|-------|-----|------|----------|-----|-----|------|\n")
		for _, sale := range s.TopSales {
			sb.WriteString(fmt.Sprintf("| %s | %.6f | %.6f | %.6f | %.6f | %.4f | %d |\n",
				sale.AssetID, sale.Qty, sale.FromAmount, sale.ToAmount,
				sale.Pnl, sale.Roi, len(sale.Chain)))
		}
		sb.WriteString("\n")
	}

	// Errors
	if len(r.Errors) > 0 {
		sb.WriteString("## Errors\n\n")
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("- %s\n", err))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
