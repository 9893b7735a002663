package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/internal/contract"
	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// yearSummary is one row of the console summary table.
type yearSummary struct {
	year            int
	entries         int
	drivers         map[string]bool
	teamChanges     int
	completenessSum float64
}

// summarizeYears folds the finished timeline into per-year console rows,
// in the timeline's first-encounter year order.
func summarizeYears(entries []schema.DriverSeasonEntry) []*yearSummary {
	byYear := make(map[int]*yearSummary)
	var order []*yearSummary

	for _, entry := range entries {
		ys, ok := byYear[entry.Year]
		if !ok {
			ys = &yearSummary{year: entry.Year, drivers: make(map[string]bool)}
			byYear[entry.Year] = ys
			order = append(order, ys)
		}
		ys.entries++
		ys.drivers[entry.Driver] = true
		ys.completenessSum += entry.DataCompleteness
		if entry.TeamStintInfo != nil && entry.TeamStintInfo.StartIndex > 0 {
			ys.teamChanges++
		}
	}
	return order
}

// printRunSummary renders the processed/failed year summary the CLI
// contract asks for, plus a per-year table of the produced entries.
func printRunSummary(w io.Writer, entries []schema.DriverSeasonEntry, result *schema.RunResult, cfg *contract.Config, duration time.Duration) error {
	fmt.Fprintf(w, "🏁 Processed years: %s\n", formatYears(result.ProcessedYears))
	if len(result.FailedYears) > 0 {
		fmt.Fprintf(w, "⚠️  Failed years: %s\n", formatYears(result.FailedYears))
	}

	years := summarizeYears(entries)
	if len(years) > 0 {
		// Narrow terminals get the short form without the change/label columns.
		wide := getTableWidth(cfg) >= 72

		table := tablewriter.NewWriter(w)
		headers := []string{"Year", "Entries", "Drivers", "Completeness"}
		if wide {
			headers = append(headers, "Team Changes", "Label")
		}
		table.Header(headers)
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		fmtFloat := func(v float64) string {
			return strconv.FormatFloat(v, 'f', cfg.Precision, 64)
		}

		var data [][]string
		for _, ys := range years {
			avg := ys.completenessSum / float64(ys.entries)
			row := []string{
				strconv.Itoa(ys.year),
				strconv.Itoa(ys.entries),
				strconv.Itoa(len(ys.drivers)),
				fmtFloat(avg),
			}
			if wide {
				row = append(row, strconv.Itoa(ys.teamChanges), contract.GetColorLabel(avg))
			}
			data = append(data, row)
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "💾 Wrote %d timeline records to %s in %s\n", result.EntryCount, result.OutputPath, duration.Round(time.Millisecond))
	return nil
}

func formatYears(years []int) string {
	if len(years) == 0 {
		return "none"
	}
	out := ""
	for i, y := range years {
		if i > 0 {
			out += ", "
		}
		out += strconv.Itoa(y)
	}
	return out
}
