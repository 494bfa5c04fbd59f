package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintab/fintab/pkg/numeric"
	"github.com/fintab/fintab/pkg/pdf"
)

type fakeDocument struct {
	pages []*fakePage
}

func (d *fakeDocument) GetMetadata() pdf.Metadata { return pdf.Metadata{} }
func (d *fakeDocument) PageCount() int            { return len(d.pages) }
func (d *fakeDocument) Close() error              { return nil }

func (d *fakeDocument) GetPages() []pdf.Page {
	pages := make([]pdf.Page, len(d.pages))
	for i, p := range d.pages {
		pages[i] = p
	}
	return pages
}

func (d *fakeDocument) GetPage(index int) (pdf.Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range", index)
	}
	return d.pages[index], nil
}

func TestProcessTableSplitsFootnotes(t *testing.T) {
	raw := [][]string{
		{"Revenue", "100", "50", "150"},
		{"* Includes non-recurring items", "", "", ""},
		{"Total", "130", "70", "200"},
	}

	rows, footnotes := ProcessTable(raw, DefaultConfig())
	assert.Equal(t, [][]string{
		{"Revenue", "100", "50", "150"},
		{"Total", "130", "70", "200"},
	}, rows)
	assert.Equal(t, []string{"* Includes non-recurring items"}, footnotes)
}

func TestProcessTableForwardFillsAfterClean(t *testing.T) {
	raw := [][]string{
		{"Revenue", "100", "50", "150"},
		{"", "30", "20", "50"},
	}

	rows, _ := ProcessTable(raw, DefaultConfig())
	require.Len(t, rows, 2)
	assert.Equal(t, "Revenue", rows[1][0])
}

func TestBatchDetectsFormatAcrossPages(t *testing.T) {
	doc := &fakeDocument{pages: []*fakePage{
		{number: 1, width: 612, height: 792, words: []pdf.Word{
			word("Ingresos", 55, 105, 110, 115),
			word("1.234,56", 160, 105, 210, 115),
			word("Total", 55, 125, 85, 135),
			word("2.500,00", 160, 125, 210, 135),
		}},
	}}

	got := Batch(doc, []int{1}, DefaultConfig())
	assert.Equal(t, numeric.PeriodThousands, got.Format)
	assert.Equal(t, []int{1}, got.Pages)
	require.Len(t, got.Tables, 1)
	assert.Equal(t, 1, got.Tables[0].Page)
	assert.Equal(t, 1, got.Tables[0].Index)
}

func TestBatchSkipsOutOfRangePages(t *testing.T) {
	doc := &fakeDocument{pages: []*fakePage{
		{number: 1, width: 612, height: 792, words: statementWords()},
	}}

	got := Batch(doc, []int{0, 1, 99}, DefaultConfig())
	assert.Equal(t, []int{1}, got.Pages)
	require.Len(t, got.Tables, 1)
}

func TestBatchValidatesRows(t *testing.T) {
	doc := &fakeDocument{pages: []*fakePage{
		{number: 1, width: 612, height: 792, words: []pdf.Word{
			word("Revenue", 55, 105, 110, 115),
			word("100", 160, 105, 185, 115),
			word("50", 230, 105, 250, 115),
			word("150", 290, 105, 315, 115),
			word("Costs", 55, 125, 95, 135),
			word("30", 160, 125, 180, 135),
			word("20", 230, 125, 250, 135),
			word("50", 290, 125, 310, 135),
		}},
	}}

	got := Batch(doc, []int{1}, DefaultConfig())
	require.Len(t, got.Tables, 1)

	validations := got.Tables[0].Validations
	require.Len(t, validations, 2)
	for _, v := range validations {
		assert.Equal(t, numeric.StatusPass, v.Status)
	}
}

func TestBatchEmptyDocument(t *testing.T) {
	doc := &fakeDocument{pages: []*fakePage{
		{number: 1, width: 612, height: 792},
	}}

	got := Batch(doc, []int{1}, DefaultConfig())
	assert.Empty(t, got.Tables)
	assert.Empty(t, got.Pages)
	assert.Equal(t, numeric.CommaThousands, got.Format)
}
