package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintab/fintab/pkg/pdf"
)

// fakePage serves fixed geometry so strategy selection can run without a
// real document.
type fakePage struct {
	number  int
	width   float64
	height  float64
	objects pdf.Objects
	words   []pdf.Word
}

func (p *fakePage) GetPageNumber() int { return p.number }
func (p *fakePage) GetWidth() float64  { return p.width }
func (p *fakePage) GetHeight() float64 { return p.height }
func (p *fakePage) GetBBox() pdf.BoundingBox {
	return pdf.BoundingBox{X1: p.width, Y1: p.height}
}
func (p *fakePage) GetObjects() pdf.Objects { return p.objects }
func (p *fakePage) ExtractText() string     { return "" }
func (p *fakePage) ExtractWords(opts ...pdf.WordExtractionOption) []pdf.Word {
	return p.words
}

func statementWords() []pdf.Word {
	return []pdf.Word{
		word("Revenue", 55, 105, 90, 115),
		word("1,234", 160, 105, 200, 115),
		word("Total", 55, 125, 85, 135),
		word("2,500", 160, 125, 200, 135),
	}
}

func TestSelectTablesWhitespaceAligned(t *testing.T) {
	// No ruled lines at all: only the text strategies can find the grid.
	page := &fakePage{number: 1, width: 612, height: 792, words: statementWords()}

	got := SelectTables(page)
	require.Len(t, got, 1)
	assert.Equal(t, pdf.StrategyText, got[0].Settings.VerticalStrategy)
	assert.Equal(t, pdf.StrategyText, got[0].Settings.HorizontalStrategy)
	assert.Equal(t, [][]string{
		{"Revenue", "1,234"},
		{"Total", "2,500"},
	}, got[0].Rows)
}

func TestSelectTablesRuled(t *testing.T) {
	vertical := func(x float64) pdf.LineObject {
		return pdf.LineObject{X0: x, Y0: 100, X1: x, Y1: 140}
	}
	horizontal := func(y float64) pdf.LineObject {
		return pdf.LineObject{X0: 50, Y0: y, X1: 250, Y1: y}
	}
	page := &fakePage{
		number: 1,
		width:  612,
		height: 792,
		objects: pdf.Objects{
			Lines: []pdf.LineObject{
				vertical(50), vertical(150), vertical(250),
				horizontal(100), horizontal(120), horizontal(140),
			},
		},
		words: statementWords(),
	}

	got := SelectTables(page)
	require.Len(t, got, 1)
	assert.Equal(t, [][]string{
		{"Revenue", "1,234"},
		{"Total", "2,500"},
	}, got[0].Rows)
}

func TestSelectTablesEmptyPage(t *testing.T) {
	page := &fakePage{number: 1, width: 612, height: 792}
	assert.Empty(t, SelectTables(page))
}
