// Package numeric normalizes financial figures extracted as text. Values
// stay strings end to end; exact decimals are used only to validate
// arithmetic, so no figure ever round-trips through a binary float.
package numeric

import (
	"regexp"
	"strings"
)

// Format is the thousands/decimal separator convention of a document.
// One document uses one convention throughout, so the format is detected
// once per extraction batch and threaded through normalization.
type Format string

const (
	// CommaThousands is the 1,234.56 convention.
	CommaThousands Format = "en"
	// PeriodThousands is the 1.234,56 convention.
	PeriodThousands Format = "es"
)

var (
	currencyPrefix  = regexp.MustCompile(`^\s*(?:Ps\.?\s*|MXN\s*|USD\s*|US\$\s*|\$\s*)`)
	parentheticalRE = regexp.MustCompile(`^\s*\(\s*([\d,.\s]+)\s*\)\s*$`)
	financialCellRE = regexp.MustCompile(`^[\s($]*\d[\d,.\s]*[)%]?$`)
	plainNumberRE   = regexp.MustCompile(`^\d+\.?\d*$`)
	anyDigitRE      = regexp.MustCompile(`\d`)
	signMarksRE     = regexp.MustCompile(`[()\x{2212}\x{2013}-]`)

	commaGroupRE       = regexp.MustCompile(`\d,\d{3}\.`)
	periodGroupRE      = regexp.MustCompile(`\d\.\d{3},`)
	commaTrailGroupRE  = regexp.MustCompile(`\d,\d{3}$`)
	periodTrailGroupRE = regexp.MustCompile(`\d\.\d{3}$`)
)

// DetectFormat scans an evidence pool of raw cell strings and votes
// between the two separator conventions. Strong evidence is a full group
// pattern (1,234. or 1.234,); a trailing bare three-digit group with no
// other separator present counts too. Ties and empty pools default to
// comma-thousands.
func DetectFormat(cells []string) Format {
	commaEvidence := 0
	periodEvidence := 0

	for _, cell := range cells {
		cleaned := currencyPrefix.ReplaceAllString(cell, "")
		cleaned = strings.TrimSpace(signMarksRE.ReplaceAllString(cleaned, ""))

		switch {
		case commaGroupRE.MatchString(cleaned):
			commaEvidence++
		case periodGroupRE.MatchString(cleaned):
			periodEvidence++
		case commaTrailGroupRE.MatchString(cleaned) && !strings.Contains(cleaned, "."):
			commaEvidence++
		case periodTrailGroupRE.MatchString(cleaned) && !strings.Contains(cleaned, ","):
			periodEvidence++
		}
	}

	if periodEvidence > commaEvidence {
		return PeriodThousands
	}
	return CommaThousands
}

// Normalize converts one raw cell string into a canonical number string:
// optional leading "-", digits, optional "." and fraction, no separators
// or symbols. The second return is false when the cell is not
// numeric-shaped. A lone dash is the literal value zero.
func Normalize(raw string, format Format) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || !anyDigitRE.MatchString(s) {
		// A lone dash placeholder still means zero.
		if s == "-" || s == "—" || s == "–" {
			return "0", true
		}
		return "", false
	}

	s = strings.TrimSpace(currencyPrefix.ReplaceAllString(s, ""))

	neg := false
	if m := parentheticalRE.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
		neg = true
	}

	s = strings.ReplaceAll(s, "−", "-")
	s = strings.ReplaceAll(s, "–", "-")
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(s[1:])
	}

	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	if format == PeriodThousands {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	if !plainNumberRE.MatchString(s) {
		return "", false
	}

	if neg {
		s = "-" + s
	}
	return s, true
}

// IsFinancialCell reports whether a cell looks like a financial number,
// percentage, or currency value.
func IsFinancialCell(cell string) bool {
	s := strings.TrimSpace(cell)
	if s == "" {
		return false
	}
	return financialCellRE.MatchString(s)
}
