package extract

import (
	"strings"

	"github.com/fintab/fintab/pkg/pdf"
)

// DetectionStrategies are the boundary-detection configurations tried
// against every page. Financial reports mix ruled tables with
// whitespace-aligned ones, so no single strategy generalizes; the
// selector is an empirical maximizer over this closed set.
var DetectionStrategies = []pdf.Settings{
	{VerticalStrategy: pdf.StrategyLines, HorizontalStrategy: pdf.StrategyLines},
	{VerticalStrategy: pdf.StrategyLines, HorizontalStrategy: pdf.StrategyText},
	{VerticalStrategy: pdf.StrategyText, HorizontalStrategy: pdf.StrategyText},
	{VerticalStrategy: pdf.StrategyText, HorizontalStrategy: pdf.StrategyLines},
}

// RawTable is one detected table with its resolved cell text and the
// strategy that produced it.
type RawTable struct {
	Rows     [][]string
	Settings pdf.Settings
}

// SelectTables runs every detection strategy against the page and keeps
// whichever yields the greatest count of non-empty cells across all its
// tables. A strategy that errors on malformed geometry is skipped. Zero
// tables on a page is an empty result, not an error.
func SelectTables(page pdf.Page) []RawTable {
	words := page.ExtractWords(pdf.WithXTolerance(2), pdf.WithYTolerance(3))

	var best []RawTable
	bestCount := 0

	for _, settings := range DetectionStrategies {
		tables, err := pdf.FindTables(page, settings)
		if err != nil {
			continue
		}

		var candidate []RawTable
		count := 0
		for _, table := range tables {
			rows := AssignWords(words, table)
			count += countNonEmptyCells(rows)
			candidate = append(candidate, RawTable{Rows: rows, Settings: settings})
		}

		if count > bestCount {
			best = candidate
			bestCount = count
		}
	}

	return best
}

func countNonEmptyCells(rows [][]string) int {
	count := 0
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				count++
			}
		}
	}
	return count
}
