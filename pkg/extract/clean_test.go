package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRGBArtifact(t *testing.T) {
	assert.True(t, IsRGBArtifact("255, 255, 255"))
	assert.True(t, IsRGBArtifact("90, 68, 120,"))
	assert.True(t, IsRGBArtifact("0 128 255"))
	assert.True(t, IsRGBArtifact(""))
	assert.True(t, IsRGBArtifact("   "))

	assert.False(t, IsRGBArtifact("1200"))
	assert.False(t, IsRGBArtifact("90, 68, 300"))
	assert.False(t, IsRGBArtifact("Revenue"))
	assert.False(t, IsRGBArtifact("1,234.50"))
}

func TestCleanStripsArtifactColumns(t *testing.T) {
	table := [][]string{
		{"90, 68, 120", "Revenue", "100", "50", "150"},
		{"12, 45, 200", "Costs", "30", "20", "50"},
		{"0, 0, 0", "Total", "130", "70", "200"},
	}

	got := Clean(table, DefaultConfig())
	assert.Equal(t, [][]string{
		{"Revenue", "100", "50", "150"},
		{"Costs", "30", "20", "50"},
		{"Total", "130", "70", "200"},
	}, got)
}

func TestCleanStopsAtFirstRealColumn(t *testing.T) {
	table := [][]string{
		{"Revenue", "100", "50", "150"},
		{"Costs", "30", "20", "50"},
	}

	got := Clean(table, DefaultConfig())
	assert.Equal(t, table, got)
}

// A leading column where most but not all cells are RGB triples still
// strips when the artifact share clears the threshold.
func TestCleanArtifactRatio(t *testing.T) {
	table := [][]string{
		{"90, 68, 120", "Revenue", "100", "50", "150"},
		{"12, 45, 200", "Costs", "30", "20", "50"},
		{"55, 10, 10", "Margin", "70", "30", "100"},
		{"stray", "Total", "200", "100", "300"},
	}

	got := Clean(table, DefaultConfig())
	assert.Equal(t, "Revenue", got[0][0])
	assert.Len(t, got[0], 4)
}

func TestCleanMergesContinuationColumns(t *testing.T) {
	table := [][]string{
		{"INGRE", "SOS", "100", "50", "150"},
		{"Total", "", "30", "20", "50"},
		{"Costs", "", "70", "30", "100"},
	}

	got := Clean(table, DefaultConfig())
	assert.Equal(t, [][]string{
		{"INGRE SOS", "100", "50", "150"},
		{"Total", "30", "20", "50"},
		{"Costs", "70", "30", "100"},
	}, got)
}

// A fragment starting lowercase after a letter continues the word with
// no space: "Ingre" + "sos" is one split label, not two words.
func TestCleanMidWordJoin(t *testing.T) {
	table := [][]string{
		{"Ingre", "sos", "100", "50", "150"},
		{"Total", "", "30", "20", "50"},
		{"Costs", "", "70", "30", "100"},
	}

	got := Clean(table, DefaultConfig())
	assert.Equal(t, "Ingresos", got[0][0])
}

// Columns holding financial values are never merged even when sparse.
func TestCleanKeepsSparseNumericColumns(t *testing.T) {
	table := [][]string{
		{"Revenue", "1,234", "100", "50", "150"},
		{"Costs", "", "30", "20", "50"},
		{"Margin", "", "70", "30", "100"},
	}

	got := Clean(table, DefaultConfig())
	assert.Len(t, got[0], 5)
	assert.Equal(t, "1,234", got[0][1])
}

func TestCleanDropsEmptyRows(t *testing.T) {
	table := [][]string{
		{"Revenue", "100"},
		{"", "   "},
		{"Total", "100"},
	}

	got := Clean(table, DefaultConfig())
	assert.Equal(t, [][]string{
		{"Revenue", "100"},
		{"Total", "100"},
	}, got)
}

func TestCleanEmptyTable(t *testing.T) {
	assert.Empty(t, Clean(nil, DefaultConfig()))
	assert.Empty(t, Clean([][]string{}, DefaultConfig()))
}

func TestForwardFillLabels(t *testing.T) {
	table := [][]string{
		{"Revenue", "100"},
		{"", "200"},
		{"Costs", "300"},
		{"", "400"},
	}

	got := ForwardFillLabels(table)
	assert.Equal(t, [][]string{
		{"Revenue", "100"},
		{"Revenue", "200"},
		{"Costs", "300"},
		{"Costs", "400"},
	}, got)

	// Input untouched.
	assert.Equal(t, "", table[1][0])
}

func TestForwardFillLabelsNoLeadingLabel(t *testing.T) {
	table := [][]string{
		{"", "100"},
		{"Revenue", "200"},
	}

	got := ForwardFillLabels(table)
	assert.Equal(t, "", got[0][0])
	assert.Equal(t, "Revenue", got[1][0])
}
