package scan

import (
	"path/filepath"
	"regexp"
	"strings"
)

// StatementType labels a table by the financial statement it belongs to.
type StatementType string

const (
	IncomeStatement StatementType = "income_statement"
	BalanceSheet    StatementType = "balance_sheet"
	CashFlow        StatementType = "cash_flow"
	NOIEBITDA       StatementType = "noi_ebitda"
	FFOAFFO         StatementType = "ffo_affo"
	KeyIndicators   StatementType = "key_indicators"
	CreditProfile   StatementType = "credit_profile"
)

type statementPatterns struct {
	statement StatementType
	patterns  []*regexp.Regexp
}

var statementMatchers = []statementPatterns{
	{IncomeStatement, compileAll(
		`(?i)income\s+statement`,
		`(?i)estado\s+de\s+resultados`,
		`(?i)consolidated\s+statements?\s+of\s+(?:comprehensive\s+)?income`,
		`(?i)rental\s*income.*operating\s*expenses.*net\s*income`,
	)},
	{BalanceSheet, compileAll(
		`(?i)balance\s+sheet`,
		`(?i)estado\s+de\s+posici[oó]n\s+financiera`,
		`(?i)financial\s+position`,
		`(?i)(?:total\s+)?assets.*(?:total\s+)?liabilities`,
		`(?i)investment\s+properties.*total\s+assets`,
	)},
	{CashFlow, compileAll(
		`(?i)cash\s+flow`,
		`(?i)flujo\s+de\s+efectivo`,
		`(?i)operating\s+activities.*investing\s+activities`,
	)},
	{NOIEBITDA, compileAll(
		`(?i)\bNOI\b.*\bEBITDA\b`,
		`(?i)\bEBITDA\b.*\bNOI\b`,
		`(?i)net\s+operating\s+income.*ebitda`,
		`(?i)\bNOI\b\s+(?:margin|breakdown)`,
	)},
	{FFOAFFO, compileAll(
		`(?i)\bFFO\b.*\bAFFO\b`,
		`(?i)\bAFFO\b.*\bFFO\b`,
		`(?i)funds\s+from\s+operations`,
		`(?i)adjusted\s+funds\s+from\s+operations`,
	)},
	{KeyIndicators, compileAll(
		`(?i)key\s+(?:financial\s+)?indicators`,
		`(?i)key\s+quarterly`,
		`(?i)indicadores\s+clave`,
		`(?i)quarterly\s+(?:financial\s+)?highlights`,
	)},
	{CreditProfile, compileAll(
		`(?i)credit\s+profile`,
		`(?i)perfil\s+(?:de\s+)?cr[eé]dito`,
		`(?i)debt\s+(?:maturity|profile|structure)`,
		`(?i)loan[- ]to[- ]value.*leverage`,
		`(?i)\bLTV\b.*\bdebt\b`,
	)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// classifyRowLimit bounds how many leading rows feed classification; tables
// announce their statement type in the header region.
const classifyRowLimit = 15

// ClassifyTable classifies a table by its first rows. Score 0 means
// unclassified.
func ClassifyTable(rows [][]string) (StatementType, int) {
	var parts []string
	for i, row := range rows {
		if i >= classifyRowLimit {
			break
		}
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				parts = append(parts, cell)
			}
		}
	}
	return classifyText(strings.Join(parts, " "))
}

// ClassifyPage classifies a page from its scan summary.
func ClassifyPage(info PageInfo) (StatementType, int) {
	return classifyText(strings.Join(info.Keywords, " ") + " " + info.Preview)
}

func classifyText(text string) (StatementType, int) {
	var best StatementType
	bestScore := 0

	for _, matcher := range statementMatchers {
		score := 0
		for _, p := range matcher.patterns {
			if p.MatchString(text) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = matcher.statement
		}
	}

	return best, bestScore
}

var periodRE = regexp.MustCompile(`^(\d[Qq]\d{2})`)

// DerivePeriod extracts a period label from a report filename:
// "3Q25.pdf" yields "3Q25". Files without a recognizable quarter label
// fall back to the bare stem.
func DerivePeriod(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if m := periodRE.FindStringSubmatch(stem); m != nil {
		return strings.ToUpper(m[1])
	}
	return stem
}

// scalePatterns map scale annotations in page text to scale tags. Order
// matters: the more specific peso phrasings win over the bare ones.
var scalePatterns = []struct {
	phrase string
	scale  string
}{
	{"millones de pesos", "millions_mxn"},
	{"miles de pesos", "thousands_mxn"},
	{"millions of pesos", "millions_mxn"},
	{"thousands of pesos", "thousands_mxn"},
	{"en millones", "millions"},
	{"en miles", "thousands"},
	{"in millions", "millions"},
	{"in thousands", "thousands"},
}

// DetectScale looks for scale annotations ("in millions", "miles de
// pesos") in the surrounding page text. Empty means no annotation found.
func DetectScale(text string) string {
	lower := strings.ToLower(text)
	for _, sp := range scalePatterns {
		if strings.Contains(lower, sp.phrase) {
			return sp.scale
		}
	}
	return ""
}

// DetectCurrency infers the reporting currency from page text. Empty
// means undetermined.
func DetectCurrency(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "ps.") || strings.Contains(lower, "pesos") || strings.Contains(lower, "mxn") {
		return "MXN"
	}
	if strings.Contains(lower, "usd") || strings.Contains(lower, "us$") || strings.Contains(lower, "dollars") {
		return "USD"
	}
	return ""
}
