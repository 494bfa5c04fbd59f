// Package scan maps financial documents: which pages carry tables and
// financial language, what statement type a table belongs to, and what
// scale and currency the figures use. Its output is compact enough to
// decide extraction targets without reading every page twice.
package scan

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fintab/fintab/pkg/pdf"
)

// financialKeywords lists the terms, English and Spanish, whose presence
// marks a page as financially relevant.
var financialKeywords = []string{
	// English
	"revenue", "income", "ebitda", "noi", "net operating income",
	"balance sheet", "cash flow", "total assets", "total liabilities",
	"equity", "earnings", "depreciation", "amortization", "capex",
	"capital expenditure", "operating expenses", "gross profit",
	"net income", "dividends", "distributions", "occupancy",
	"rental income", "interest expense", "debt", "leverage",
	"loan to value", "ltv", "ffo", "affo", "funds from operations",
	"fair value", "investment properties", "gla", "sqm", "sq ft",
	// Spanish
	"ingresos", "estado de resultados", "estado de posición financiera",
	"balance general", "flujo de efectivo", "utilidad neta",
	"utilidad de operación", "activos totales", "pasivos totales",
	"capital contable", "depreciación", "amortización",
	"gastos de operación", "ingreso por rentas", "gasto por intereses",
	"deuda", "propiedades de inversión", "ocupación",
	"resultado integral", "distribuciones", "certificados",
	"cbfis", "fibra", "fideicomiso", "arrendamiento",
	"millones de pesos", "miles de pesos",
}

var hasNumbersRE = regexp.MustCompile(`[\d,]+\.?\d*`)

// PageInfo is the scan summary for one page.
type PageInfo struct {
	Page     int      `json:"page"`
	Tables   int      `json:"tables"`
	Chars    int      `json:"chars"`
	HasNums  bool     `json:"has_numbers"`
	Keywords []string `json:"financial_keywords"`
	Preview  string   `json:"preview"`
}

// DocumentMap is the scan summary for a whole document.
type DocumentMap struct {
	File               string     `json:"file"`
	TotalPages         int        `json:"total_pages"`
	FinancialPages     []int      `json:"financial_pages"`
	FinancialPageCount int        `json:"financial_page_count"`
	Pages              []PageInfo `json:"pages"`
}

// ScanPage summarizes one page: table count under the ruled and
// whitespace strategies (whichever finds more), matched keywords, a short
// preview, and whether the page carries numbers at all.
func ScanPage(page pdf.Page) PageInfo {
	text := page.ExtractText()
	lower := strings.ToLower(text)

	tableCount := countTables(page)

	var matched []string
	for _, kw := range financialKeywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}

	return PageInfo{
		Page:     page.GetPageNumber(),
		Tables:   tableCount,
		Chars:    len(text),
		HasNums:  hasNumbersRE.MatchString(text),
		Keywords: matched,
		Preview:  preview(text),
	}
}

// ScanDocument scans every page and collects the pages worth extracting:
// those with detected tables or financial keyword hits.
func ScanDocument(doc pdf.Document, file string) DocumentMap {
	result := DocumentMap{
		File:       file,
		TotalPages: doc.PageCount(),
	}

	for _, page := range doc.GetPages() {
		info := ScanPage(page)
		result.Pages = append(result.Pages, info)
		if info.Tables > 0 || len(info.Keywords) > 0 {
			result.FinancialPages = append(result.FinancialPages, info.Page)
		}
	}
	result.FinancialPageCount = len(result.FinancialPages)

	return result
}

// SelectPages picks the best extraction targets from a scan: pages with
// both tables and at least two keyword hits, ranked by keyword weight,
// capped at maxPages so chart and property pages don't flood the batch.
// If nothing qualifies it relaxes to a single keyword.
func SelectPages(m DocumentMap, maxPages int) []int {
	selected := rankPages(m.Pages, 2, maxPages)
	if len(selected) == 0 {
		selected = rankPages(m.Pages, 1, maxPages)
	}
	return selected
}

func rankPages(pages []PageInfo, minKeywords, maxPages int) []int {
	type scored struct {
		page  int
		score int
	}
	var candidates []scored
	for _, p := range pages {
		if p.Tables > 0 && len(p.Keywords) >= minKeywords {
			candidates = append(candidates, scored{p.Page, len(p.Keywords)*2 + p.Tables})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var selected []int
	for _, c := range candidates {
		if len(selected) == maxPages {
			break
		}
		selected = append(selected, c.page)
	}
	return selected
}

func countTables(page pdf.Page) int {
	best := 0
	for _, settings := range []pdf.Settings{
		{VerticalStrategy: pdf.StrategyLines, HorizontalStrategy: pdf.StrategyLines},
		{VerticalStrategy: pdf.StrategyText, HorizontalStrategy: pdf.StrategyText},
	} {
		tables, err := pdf.FindTables(page, settings)
		if err != nil {
			continue
		}
		if len(tables) > best {
			best = len(tables)
		}
	}
	return best
}

// preview joins the first five non-blank lines, capped at 300 characters.
func preview(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
			if len(lines) == 5 {
				break
			}
		}
	}
	p := strings.Join(lines, " | ")
	if runes := []rune(p); len(runes) > 300 {
		p = string(runes[:300]) + "..."
	}
	return p
}
