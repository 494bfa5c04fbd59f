// Package extract reconstructs tables from page geometry: words are
// assigned to detected cell boxes, competing detection strategies are
// scored, presentation artifacts are stripped, and footnote rows are
// separated from data rows.
package extract

import (
	"math"
	"sort"
	"strings"

	"github.com/fintab/fintab/pkg/pdf"
)

const (
	// assignTolerance expands each cell box when testing whether a word
	// center falls inside it.
	assignTolerance = 2.0

	// coarseGap is the horizontal gap that splits cells when a table has
	// no detected cell boxes and words must be grouped by whitespace.
	coarseGap = 15.0
)

type gridKey struct {
	row float64
	col float64
}

type placedWord struct {
	x0   float64
	top  float64
	text string
}

// AssignWords maps page words onto a table's cell grid and returns a
// row-major table of strings, one per (row, column) position, empty where
// no word fell in the cell. Row keys are the rounded cell tops, column
// keys the rounded cell lefts. A word lands in the smallest-area cell
// containing its center; words in one cell are joined in reading order
// with single spaces. Words outside every cell are dropped; they are
// typically labels beyond the table bounds.
func AssignWords(words []pdf.Word, table pdf.Table) [][]string {
	if len(table.Cells) == 0 {
		return coarseExtract(words, table.BBox)
	}

	rowKeys := clusterKeys(table.Cells, func(b pdf.BoundingBox) float64 { return b.Y0 })
	colKeys := clusterKeys(table.Cells, func(b pdf.BoundingBox) float64 { return b.X0 })

	grid := make(map[gridKey]pdf.BoundingBox, len(table.Cells))
	for _, cell := range table.Cells {
		key := gridKey{
			row: nearestKey(rowKeys, math.Round(cell.Y0)),
			col: nearestKey(colKeys, math.Round(cell.X0)),
		}
		grid[key] = cell
	}

	cellWords := make(map[gridKey][]placedWord)
	for _, word := range words {
		cx, cy := word.Center()

		var bestKey gridKey
		bestArea := 0.0
		found := false
		for key, box := range grid {
			if box.ContainsWithin(cx, cy, assignTolerance) {
				area := box.Area()
				if !found || area < bestArea {
					found = true
					bestKey = key
					bestArea = area
				}
			}
		}

		if found {
			cellWords[bestKey] = append(cellWords[bestKey], placedWord{
				x0:   word.X0,
				top:  word.Y0,
				text: word.Text,
			})
		}
	}

	result := make([][]string, len(rowKeys))
	for i, rowKey := range rowKeys {
		row := make([]string, len(colKeys))
		for j, colKey := range colKeys {
			row[j] = joinCellWords(cellWords[gridKey{row: rowKey, col: colKey}])
		}
		result[i] = row
	}
	return result
}

// clusterKeys returns the sorted distinct rounded coordinates of the cells
// along one axis. Keys are stable for one table's reconstruction only.
func clusterKeys(cells []pdf.BoundingBox, coord func(pdf.BoundingBox) float64) []float64 {
	seen := make(map[float64]bool, len(cells))
	var keys []float64
	for _, cell := range cells {
		k := math.Round(coord(cell))
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Float64s(keys)
	return keys
}

func nearestKey(keys []float64, value float64) float64 {
	best := keys[0]
	bestDist := math.Abs(keys[0] - value)
	for _, k := range keys[1:] {
		if d := math.Abs(k - value); d < bestDist {
			best = k
			bestDist = d
		}
	}
	return best
}

// joinCellWords restores reading order within a cell: top to bottom, then
// left to right, single spaces between words.
func joinCellWords(words []placedWord) string {
	if len(words) == 0 {
		return ""
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].top != words[j].top {
			return words[i].top < words[j].top
		}
		return words[i].x0 < words[j].x0
	})

	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.text
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// coarseExtract is the fallback when a table exposes no cell boxes: words
// inside the table bounds are grouped into lines and split into cells at
// wide horizontal gaps.
func coarseExtract(words []pdf.Word, bbox pdf.BoundingBox) [][]string {
	var inside []pdf.Word
	for _, word := range words {
		cx, cy := word.Center()
		if bbox.ContainsWithin(cx, cy, assignTolerance) {
			inside = append(inside, word)
		}
	}
	if len(inside) == 0 {
		return nil
	}

	sort.Slice(inside, func(i, j int) bool {
		if math.Abs(inside[i].Y0-inside[j].Y0) > assignTolerance {
			return inside[i].Y0 < inside[j].Y0
		}
		return inside[i].X0 < inside[j].X0
	})

	var rows [][]string
	var line []pdf.Word
	lineY := inside[0].Y0

	flush := func() {
		if len(line) > 0 {
			rows = append(rows, splitLineAtGaps(line))
			line = nil
		}
	}

	for _, word := range inside {
		if math.Abs(word.Y0-lineY) > assignTolerance {
			flush()
			lineY = word.Y0
		}
		line = append(line, word)
	}
	flush()

	return rows
}

func splitLineAtGaps(line []pdf.Word) []string {
	sort.Slice(line, func(i, j int) bool {
		return line[i].X0 < line[j].X0
	})

	var cells []string
	current := line[0].Text
	lastX1 := line[0].X1

	for _, word := range line[1:] {
		if word.X0-lastX1 > coarseGap {
			cells = append(cells, current)
			current = word.Text
		} else {
			current += " " + word.Text
		}
		lastX1 = word.X1
	}
	cells = append(cells, current)
	return cells
}
