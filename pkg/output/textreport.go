package output

import (
	"regexp"
	"strings"
)

// numberRE finds number-shaped spans, optionally currency-prefixed or
// parenthesized, for cross-checking text against extracted tables.
var numberRE = regexp.MustCompile(
	`[($]?\s*(?:Ps\.?\s*)?\$?\s*\d{1,3}(?:[,.]\d{3})*(?:[.,]\d{1,2})?\s*\)?`,
)

var digitRE = regexp.MustCompile(`\d`)

// NumberSpan is one number-like occurrence in page text.
type NumberSpan struct {
	Raw   string `json:"raw"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// PageText is the text-extraction report for one page, used to
// cross-validate table extraction: the same figures should appear in both.
type PageText struct {
	Page         int          `json:"page"`
	Error        string       `json:"error,omitempty"`
	Text         string       `json:"text"`
	CharCount    int          `json:"char_count"`
	NumbersFound int          `json:"numbers_found"`
	Numbers      []NumberSpan `json:"numbers"`
}

// TextReport is the text-extraction output for a set of pages.
type TextReport struct {
	File           string     `json:"file"`
	PagesRequested []int      `json:"pages_requested"`
	Results        []PageText `json:"results"`
}

// ExtractNumbers finds all number-like strings in text with positions.
func ExtractNumbers(text string) []NumberSpan {
	var spans []NumberSpan
	for _, loc := range numberRE.FindAllStringIndex(text, -1) {
		raw := strings.TrimSpace(text[loc[0]:loc[1]])
		if !digitRE.MatchString(raw) {
			continue
		}
		spans = append(spans, NumberSpan{Raw: raw, Start: loc[0], End: loc[1]})
	}
	return spans
}

// NewPageText builds the report entry for one page's text.
func NewPageText(page int, text string) PageText {
	numbers := ExtractNumbers(text)
	return PageText{
		Page:         page,
		Text:         text,
		CharCount:    len(text),
		NumbersFound: len(numbers),
		Numbers:      numbers,
	}
}
