package display

import (
	"github.com/pterm/pterm"

	"github.com/teranos/logbox/stats"
)

// RenderReport prints a statistics report for humans.
func RenderReport(rep *stats.Report) {
	pterm.Info.Printf("Processed %d records (%d lines unparseable)\n", rep.Records, rep.ParseFailures)
	if rep.Earliest != "" {
		pterm.Printf("  Earliest: %s\n", rep.Earliest)
		pterm.Printf("  Latest:   %s\n", rep.Latest)
	}
	if rep.MissingTimestamp > 0 {
		pterm.Printf("  Without a readable timestamp: %d\n", rep.MissingTimestamp)
	}
	pterm.Println()

	renderHistogram("Severities", rep.Severities)
	renderHistogram("Resource types", rep.Resources)
	renderHistogram("Accounts", rep.Accounts)
}

func renderHistogram(title string, m map[string]int) {
	if len(m) == 0 {
		return
	}
	pterm.Info.Printf("%s:\n", title)
	for _, row := range stats.Buckets(m) {
		pterm.Printf("  %6d  %s\n", row.Count, row.Name)
	}
	pterm.Println()
}
