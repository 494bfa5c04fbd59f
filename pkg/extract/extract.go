package extract

import (
	"strings"

	"github.com/fintab/fintab/pkg/numeric"
	"github.com/fintab/fintab/pkg/pdf"
)

// TableResult is one fully processed table: cleaned data rows, the
// footnote text excluded from them, and the row-total validations.
type TableResult struct {
	Page        int
	Index       int // 1-based within the page
	Settings    pdf.Settings
	Rows        [][]string
	Footnotes   []string
	Validations []numeric.RowValidation
}

// BatchResult is the durable output of one extraction batch.
type BatchResult struct {
	Format numeric.Format
	Pages  []int // pages where tables were detected
	Tables []TableResult
}

type pageTables struct {
	page   int
	tables []RawTable
}

// Batch extracts tables from the requested pages in two phases. Phase one
// detects tables and pools their cleaned cell text as number-format
// evidence; phase two fixes the format for the whole batch and processes
// each table. The format is an explicit value, never package state, so
// phase two is a pure per-table function and safe to parallelize.
// Out-of-range pages and pages without tables produce no output and no
// error: partial extraction from a noisy document beats none.
func Batch(doc pdf.Document, pages []int, cfg Config) BatchResult {
	var collected []pageTables
	var evidence []string
	var extractedPages []int

	for _, pageNum := range pages {
		if pageNum < 1 || pageNum > doc.PageCount() {
			continue
		}
		page, err := doc.GetPage(pageNum - 1)
		if err != nil {
			continue
		}

		tables := SelectTables(page)
		if len(tables) == 0 {
			continue
		}

		for _, raw := range tables {
			for _, row := range Clean(raw.Rows, cfg) {
				for _, cell := range row {
					if strings.TrimSpace(cell) != "" {
						evidence = append(evidence, cell)
					}
				}
			}
		}

		collected = append(collected, pageTables{page: pageNum, tables: tables})
		extractedPages = append(extractedPages, pageNum)
	}

	format := numeric.DetectFormat(evidence)

	result := BatchResult{Format: format, Pages: extractedPages}
	for _, pt := range collected {
		for idx, raw := range pt.tables {
			rows, footnotes := ProcessTable(raw.Rows, cfg)
			if len(rows) == 0 {
				continue
			}
			result.Tables = append(result.Tables, TableResult{
				Page:        pt.page,
				Index:       idx + 1,
				Settings:    raw.Settings,
				Rows:        rows,
				Footnotes:   footnotes,
				Validations: numeric.ValidateRowTotals(rows, format),
			})
		}
	}

	return result
}

// ProcessTable cleans a raw table, forward-fills row labels, and splits
// footnote rows out of the data rows. Footnote rows are returned as
// joined text so nothing is silently discarded.
func ProcessTable(raw [][]string, cfg Config) (dataRows [][]string, footnotes []string) {
	rows := ForwardFillLabels(Clean(raw, cfg))

	for _, row := range rows {
		if IsFootnoteRow(row, cfg.FootnoteMaxChars) {
			var parts []string
			for _, cell := range row {
				if strings.TrimSpace(cell) != "" {
					parts = append(parts, cell)
				}
			}
			if len(parts) > 0 {
				footnotes = append(footnotes, strings.Join(parts, " "))
			}
		} else {
			dataRows = append(dataRows, row)
		}
	}

	return dataRows, footnotes
}
