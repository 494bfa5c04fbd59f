package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFootnoteRowMarkers(t *testing.T) {
	maxChars := DefaultConfig().FootnoteMaxChars

	marked := [][]string{
		{"1) Includes non-recurring items", ""},
		{"12. See accompanying notes", ""},
		{"* Unaudited figures", ""},
		{"† Restated", ""},
		{"¹ Pro forma basis", ""},
		{"(1) Net of eliminations", ""},
	}
	for _, row := range marked {
		assert.True(t, IsFootnoteRow(row, maxChars), "row %q", row[0])
	}

	data := [][]string{
		{"Revenue", "1,234", "2,500"},
		{"Total assets", "10,000"},
	}
	for _, row := range data {
		assert.False(t, IsFootnoteRow(row, maxChars), "row %q", row[0])
	}
}

func TestIsFootnoteRowLongText(t *testing.T) {
	prose := strings.Repeat("net operating income before adjustments ", 6)
	assert.Greater(t, len(prose), 200)

	assert.True(t, IsFootnoteRow([]string{prose}, 200))
	assert.False(t, IsFootnoteRow([]string{"Revenue", "1,234"}, 200))
}

func TestIsFootnoteRowBullets(t *testing.T) {
	assert.True(t, IsFootnoteRow([]string{"Highlights", "• occupancy up"}, 200))
	assert.True(t, IsFootnoteRow([]string{"▪ portfolio grew"}, 200))
	assert.True(t, IsFootnoteRow([]string{"● leverage stable"}, 200))
}

func TestIsFootnoteRowEmpty(t *testing.T) {
	assert.True(t, IsFootnoteRow([]string{"", "  "}, 200))
	assert.True(t, IsFootnoteRow(nil, 200))
}

// The marker check reads the first non-empty cell, not literally the
// first column.
func TestIsFootnoteRowMarkerAfterEmptyCell(t *testing.T) {
	assert.True(t, IsFootnoteRow([]string{"", "* Includes adjustments"}, 200))
}
