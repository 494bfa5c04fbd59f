package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/fintab/fintab/pkg/numeric"
)

// Config holds the cleaning and classification thresholds. The defaults
// are tuned to financial statement layouts; they are policy, not truth,
// and callers targeting other document classes should re-tune them.
type Config struct {
	// ArtifactRatio is the minimum share of a leading column's non-empty
	// cells that must look like RGB triples for the column to be stripped.
	ArtifactRatio float64 `yaml:"artifact_ratio"`

	// ContinuationEmptyRatio is the minimum share of empty cells for a
	// column with no financial content to count as a label continuation.
	ContinuationEmptyRatio float64 `yaml:"continuation_empty_ratio"`

	// FootnoteMaxChars is the joined-row length beyond which a row is
	// treated as narrative text rather than table data.
	FootnoteMaxChars int `yaml:"footnote_max_chars"`
}

// DefaultConfig returns the thresholds tuned for financial reports.
func DefaultConfig() Config {
	return Config{
		ArtifactRatio:          0.7,
		ContinuationEmptyRatio: 0.5,
		FootnoteMaxChars:       200,
	}
}

var rgbSplitRE = regexp.MustCompile(`[,\s]+`)

// IsRGBArtifact reports whether a cell looks like leftover RGB color
// components from presentation-style PDF exports: small integers 0-255,
// comma or space separated. Empty cells count as artifacts so sparse
// artifact columns still strip.
func IsRGBArtifact(cell string) bool {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(cell), ","))
	if s == "" {
		return true
	}
	for _, part := range rgbSplitRE.Split(s, -1) {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// Clean applies the three artifact passes in order: leading RGB-artifact
// columns are stripped, label-continuation columns are merged into the
// preceding column, and rows left with no content are dropped. Artifacts
// must go first or they bias the mostly-empty continuation heuristic.
// Each pass returns a new table; the input is never mutated.
func Clean(table [][]string, cfg Config) [][]string {
	if len(table) == 0 {
		return table
	}

	table = stripColumns(table, detectArtifactColumns(table, cfg.ArtifactRatio))
	table = mergeColumns(table, detectContinuationColumns(table, cfg.ContinuationEmptyRatio))
	return dropEmptyRows(table)
}

// detectArtifactColumns returns how many leading columns to strip.
// Artifact columns are always leading and contiguous; scanning stops at
// the first column that fails the ratio.
func detectArtifactColumns(table [][]string, ratio float64) int {
	maxCols := maxColumns(table)
	stripCount := 0

	for colIdx := 0; colIdx < maxCols; colIdx++ {
		var nonEmpty []string
		for _, row := range table {
			if colIdx < len(row) && strings.TrimSpace(row[colIdx]) != "" {
				nonEmpty = append(nonEmpty, row[colIdx])
			}
		}

		if len(nonEmpty) == 0 {
			stripCount++
			continue
		}

		artifacts := 0
		for _, v := range nonEmpty {
			if IsRGBArtifact(v) {
				artifacts++
			}
		}
		if float64(artifacts)/float64(len(nonEmpty)) > ratio {
			stripCount++
		} else {
			break
		}
	}

	return stripCount
}

func stripColumns(table [][]string, count int) [][]string {
	if count == 0 {
		return table
	}
	stripped := make([][]string, len(table))
	for i, row := range table {
		if count < len(row) {
			stripped[i] = append([]string(nil), row[count:]...)
		} else {
			stripped[i] = []string{}
		}
	}
	return stripped
}

// detectContinuationColumns finds columns holding wrapped label fragments:
// no financial-shaped cells and mostly empty. The first column is never a
// continuation.
func detectContinuationColumns(table [][]string, emptyRatio float64) map[int]bool {
	maxCols := maxColumns(table)
	mergeCols := make(map[int]bool)

	for colIdx := 1; colIdx < maxCols; colIdx++ {
		var values []string
		for _, row := range table {
			if colIdx < len(row) {
				values = append(values, strings.TrimSpace(row[colIdx]))
			} else {
				values = append(values, "")
			}
		}

		nonEmpty := 0
		financial := 0
		for _, v := range values {
			if v == "" {
				continue
			}
			nonEmpty++
			if numeric.IsFinancialCell(v) {
				financial++
			}
		}
		if nonEmpty == 0 {
			continue
		}

		empty := 1 - float64(nonEmpty)/float64(len(values))
		if financial == 0 && empty > emptyRatio {
			mergeCols[colIdx] = true
		}
	}

	return mergeCols
}

// mergeColumns concatenates each continuation column into the nearest
// preceding non-merged column, then drops the merged columns. A space is
// inserted at the join unless the fragment continues mid-word, detected
// by a lowercase letter following a letter.
func mergeColumns(table [][]string, mergeCols map[int]bool) [][]string {
	if len(mergeCols) == 0 {
		return table
	}

	var sortedCols []int
	for col := range mergeCols {
		sortedCols = append(sortedCols, col)
	}
	sort.Ints(sortedCols)

	merged := make([][]string, len(table))
	for i, row := range table {
		newRow := append([]string(nil), row...)

		for _, colIdx := range sortedCols {
			if colIdx >= len(newRow) || colIdx < 1 {
				continue
			}
			target := colIdx - 1
			for target > 0 && mergeCols[target] {
				target--
			}

			curr := strings.TrimSpace(newRow[target])
			addition := strings.TrimSpace(newRow[colIdx])

			switch {
			case curr != "" && addition != "":
				if midWordJoin(curr, addition) {
					newRow[target] = curr + addition
				} else {
					newRow[target] = curr + " " + addition
				}
			case addition != "":
				newRow[target] = addition
			}
			newRow[colIdx] = ""
		}

		final := make([]string, 0, len(newRow))
		for j, cell := range newRow {
			if !mergeCols[j] {
				final = append(final, cell)
			}
		}
		merged[i] = final
	}

	return merged
}

// midWordJoin reports whether addition continues curr mid-word.
func midWordJoin(curr, addition string) bool {
	currRunes := []rune(curr)
	addRunes := []rune(addition)
	return unicode.IsLetter(currRunes[len(currRunes)-1]) && unicode.IsLower(addRunes[0])
}

func dropEmptyRows(table [][]string) [][]string {
	cleaned := make([][]string, 0, len(table))
	for _, row := range table {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				cleaned = append(cleaned, row)
				break
			}
		}
	}
	return cleaned
}

// ForwardFillLabels fills merged-cell gaps in the first column: a row with
// an empty label inherits the label of the nearest row above it. Returns
// a new table.
func ForwardFillLabels(table [][]string) [][]string {
	filled := make([][]string, len(table))
	lastLabel := ""

	for i, row := range table {
		newRow := append([]string(nil), row...)
		if len(newRow) > 0 {
			if strings.TrimSpace(newRow[0]) != "" {
				lastLabel = newRow[0]
			} else if lastLabel != "" {
				newRow[0] = lastLabel
			}
		}
		filled[i] = newRow
	}

	return filled
}

func maxColumns(table [][]string) int {
	maxCols := 0
	for _, row := range table {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	return maxCols
}
