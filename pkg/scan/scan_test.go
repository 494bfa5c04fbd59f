package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintab/fintab/pkg/pdf"
)

type stubPage struct {
	number int
	text   string
	words  []pdf.Word
}

func (p *stubPage) GetPageNumber() int       { return p.number }
func (p *stubPage) GetWidth() float64        { return 612 }
func (p *stubPage) GetHeight() float64       { return 792 }
func (p *stubPage) GetBBox() pdf.BoundingBox { return pdf.BoundingBox{X1: 612, Y1: 792} }
func (p *stubPage) GetObjects() pdf.Objects  { return pdf.Objects{} }
func (p *stubPage) ExtractText() string      { return p.text }
func (p *stubPage) ExtractWords(opts ...pdf.WordExtractionOption) []pdf.Word {
	return p.words
}

func TestScanPage(t *testing.T) {
	page := &stubPage{
		number: 3,
		text:   "Estado de Resultados\nIngresos totales 1,234\nUtilidad neta 300",
	}

	info := ScanPage(page)
	assert.Equal(t, 3, info.Page)
	assert.True(t, info.HasNums)
	assert.Contains(t, info.Keywords, "ingresos")
	assert.Contains(t, info.Keywords, "estado de resultados")
	assert.Contains(t, info.Preview, "Estado de Resultados | Ingresos totales")
}

func TestScanPagePreviewCapped(t *testing.T) {
	long := strings.Repeat("palabra ", 100)
	page := &stubPage{number: 1, text: long + "\n" + long}

	info := ScanPage(page)
	assert.LessOrEqual(t, len([]rune(info.Preview)), 303)
	assert.True(t, strings.HasSuffix(info.Preview, "..."))
}

func TestSelectPages(t *testing.T) {
	m := DocumentMap{Pages: []PageInfo{
		{Page: 1, Tables: 0, Keywords: []string{"revenue", "ebitda"}},
		{Page: 2, Tables: 2, Keywords: []string{"revenue", "ebitda", "noi"}},
		{Page: 3, Tables: 1, Keywords: []string{"revenue", "debt"}},
		{Page: 4, Tables: 3, Keywords: nil},
	}}

	got := SelectPages(m, 10)
	// Page 2 scores 3*2+2=8, page 3 scores 2*2+1=5. Pages 1 and 4 lack
	// tables or keywords.
	assert.Equal(t, []int{2, 3}, got)
}

func TestSelectPagesCap(t *testing.T) {
	m := DocumentMap{Pages: []PageInfo{
		{Page: 1, Tables: 1, Keywords: []string{"revenue", "debt"}},
		{Page: 2, Tables: 1, Keywords: []string{"revenue", "debt", "noi"}},
		{Page: 3, Tables: 1, Keywords: []string{"revenue", "debt"}},
	}}

	got := SelectPages(m, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0])
}

func TestSelectPagesRelaxesToSingleKeyword(t *testing.T) {
	m := DocumentMap{Pages: []PageInfo{
		{Page: 1, Tables: 1, Keywords: []string{"revenue"}},
		{Page: 2, Tables: 0, Keywords: []string{"revenue"}},
	}}

	got := SelectPages(m, 10)
	assert.Equal(t, []int{1}, got)
}

func TestSelectPagesNothingQualifies(t *testing.T) {
	m := DocumentMap{Pages: []PageInfo{
		{Page: 1, Tables: 0, Keywords: nil},
	}}

	assert.Empty(t, SelectPages(m, 10))
}
