package extract

import (
	"regexp"
	"strings"
)

// footnoteMarkerRE matches the start of annotation rows: numbered markers
// ("1)", "12."), superscript/symbol markers, or parenthetical digits.
var footnoteMarkerRE = regexp.MustCompile(`^\s*(?:\d{1,2}\s*[).]|[*†‡§¹²³⁴⁵]|\(\d\))\s*`)

var bulletGlyphs = []string{"▪", "•", "●"}

// IsFootnoteRow classifies a row as footnote or narrative text rather
// than table data: the first non-empty cell carries a footnote marker,
// the joined row text exceeds maxChars (prose, not a table row), or any
// cell contains a bullet glyph. Rows with no text at all also classify as
// footnotes; the cleaner removes them before this runs.
func IsFootnoteRow(row []string, maxChars int) bool {
	var textCells []string
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			textCells = append(textCells, cell)
		}
	}
	if len(textCells) == 0 {
		return true
	}

	if footnoteMarkerRE.MatchString(textCells[0]) {
		return true
	}

	if len(strings.Join(textCells, " ")) > maxChars {
		return true
	}

	for _, cell := range row {
		for _, glyph := range bulletGlyphs {
			if strings.Contains(cell, glyph) {
				return true
			}
		}
	}

	return false
}
