package pdf

import (
	"fmt"
	"math"
	"sort"
)

const (
	// snapTolerance merges boundary positions that differ by less than
	// one snapping step.
	snapTolerance = 3.0

	// rowGapLimit is the vertical gap between row boundaries that splits
	// vertically stacked tables into separate regions.
	rowGapLimit = 40.0

	// maxBoundaries guards against degenerate geometry (thousands of
	// hairlines from vector artwork) producing absurd cell grids.
	maxBoundaries = 400

	// thinEdge is the thickness below which a rectangle is treated as a
	// ruled line rather than a cell background.
	thinEdge = 2.0
)

// FindTables detects candidate table grids on a page using the given
// per-axis strategies. It returns the detected tables as cell-box sets;
// resolving cell text is the caller's concern. Degenerate geometry is an
// error so callers can skip the strategy; a page with no table-like
// structure yields zero tables and no error.
func FindTables(p Page, s Settings) ([]Table, error) {
	objects := p.GetObjects()
	words := p.ExtractWords()

	colBounds, err := columnBoundaries(s.VerticalStrategy, objects, words)
	if err != nil {
		return nil, err
	}
	rowBounds, err := rowBoundaries(s.HorizontalStrategy, objects, words)
	if err != nil {
		return nil, err
	}

	if len(colBounds) < 3 || len(rowBounds) < 3 {
		return nil, nil
	}

	var tables []Table
	for _, segment := range splitRowSegments(rowBounds) {
		if len(segment) < 3 {
			continue
		}
		tables = append(tables, buildTable(segment, colBounds))
	}
	return tables, nil
}

func columnBoundaries(strategy string, objects Objects, words []Word) ([]float64, error) {
	var positions []float64
	switch strategy {
	case StrategyLines:
		for _, line := range deduplicateLines(objects.Lines) {
			if math.Abs(line.X1-line.X0) < snapTolerance {
				positions = append(positions, line.X0)
			}
		}
		for _, rect := range objects.Rects {
			if rect.X1-rect.X0 < thinEdge {
				positions = append(positions, (rect.X0+rect.X1)/2)
			} else {
				positions = append(positions, rect.X0, rect.X1)
			}
		}
	case StrategyText:
		positions = textColumnPositions(words)
	default:
		return nil, fmt.Errorf("unknown vertical strategy %q", strategy)
	}
	return snapPositions(positions)
}

func rowBoundaries(strategy string, objects Objects, words []Word) ([]float64, error) {
	var positions []float64
	switch strategy {
	case StrategyLines:
		for _, line := range deduplicateLines(objects.Lines) {
			if math.Abs(line.Y1-line.Y0) < snapTolerance {
				positions = append(positions, line.Y0)
			}
		}
		for _, rect := range objects.Rects {
			if rect.Y1-rect.Y0 < thinEdge {
				positions = append(positions, (rect.Y0+rect.Y1)/2)
			} else {
				positions = append(positions, rect.Y0, rect.Y1)
			}
		}
	case StrategyText:
		positions = textRowPositions(words)
	default:
		return nil, fmt.Errorf("unknown horizontal strategy %q", strategy)
	}
	return snapPositions(positions)
}

// snapPositions rounds positions to the snapping step, deduplicates and
// sorts them, and rejects geometry too dense to be a real table grid.
func snapPositions(positions []float64) ([]float64, error) {
	seen := make(map[float64]bool, len(positions))
	var snapped []float64
	for _, pos := range positions {
		p := math.Round(pos/snapTolerance) * snapTolerance
		if !seen[p] {
			seen[p] = true
			snapped = append(snapped, p)
		}
	}
	if len(snapped) > maxBoundaries {
		return nil, fmt.Errorf("degenerate geometry: %d distinct boundaries", len(snapped))
	}
	sort.Float64s(snapped)
	return snapped, nil
}

// textColumnPositions derives column boundaries from word alignment: an X
// position where words start in enough lines is a column start. The right
// edge of the rightmost word closes the final column.
func textColumnPositions(words []Word) []float64 {
	lines := groupWordsIntoLines(words)
	if len(lines) < 2 {
		return nil
	}

	votes := make(map[float64]int)
	rightEdge := 0.0
	for _, line := range lines {
		seenInLine := make(map[float64]bool)
		for _, word := range line {
			x := math.Round(word.X0/snapTolerance) * snapTolerance
			if !seenInLine[x] {
				seenInLine[x] = true
				votes[x]++
			}
			if word.X1 > rightEdge {
				rightEdge = word.X1
			}
		}
	}

	minVotes := len(lines) * 3 / 10
	if minVotes < 2 {
		minVotes = 2
	}

	var positions []float64
	for x, count := range votes {
		if count >= minVotes {
			positions = append(positions, x)
		}
	}
	if len(positions) > 0 {
		positions = append(positions, rightEdge)
	}
	return positions
}

// textRowPositions derives row boundaries from word lines: each line's top
// opens a row and the last line's bottom closes the final one.
func textRowPositions(words []Word) []float64 {
	lines := groupWordsIntoLines(words)
	if len(lines) < 2 {
		return nil
	}

	var positions []float64
	bottom := 0.0
	for _, line := range lines {
		top := line[0].Y0
		for _, word := range line {
			top = min(top, word.Y0)
			bottom = max(bottom, word.Y1)
		}
		positions = append(positions, top)
	}
	positions = append(positions, bottom)
	return positions
}

// groupWordsIntoLines clusters words by vertical position, top to bottom.
func groupWordsIntoLines(words []Word) [][]Word {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Y0 < sorted[j].Y0
	})

	var lines [][]Word
	current := []Word{sorted[0]}
	currentY := sorted[0].Y0

	for _, word := range sorted[1:] {
		if math.Abs(word.Y0-currentY) > snapTolerance {
			lines = append(lines, current)
			current = []Word{word}
			currentY = word.Y0
		} else {
			current = append(current, word)
		}
	}
	lines = append(lines, current)
	return lines
}

// splitRowSegments splits sorted row boundaries at gaps wide enough to
// separate stacked tables.
func splitRowSegments(rowBounds []float64) [][]float64 {
	var segments [][]float64
	current := []float64{rowBounds[0]}
	for i := 1; i < len(rowBounds); i++ {
		if rowBounds[i]-rowBounds[i-1] > rowGapLimit {
			segments = append(segments, current)
			current = nil
		}
		current = append(current, rowBounds[i])
	}
	segments = append(segments, current)
	return segments
}

func buildTable(rowBounds, colBounds []float64) Table {
	cells := make([]BoundingBox, 0, (len(rowBounds)-1)*(len(colBounds)-1))
	for i := 0; i < len(rowBounds)-1; i++ {
		for j := 0; j < len(colBounds)-1; j++ {
			cells = append(cells, BoundingBox{
				X0: colBounds[j],
				Y0: rowBounds[i],
				X1: colBounds[j+1],
				Y1: rowBounds[i+1],
			})
		}
	}
	return Table{
		Cells: cells,
		BBox: BoundingBox{
			X0: colBounds[0],
			Y0: rowBounds[0],
			X1: colBounds[len(colBounds)-1],
			Y1: rowBounds[len(rowBounds)-1],
		},
	}
}
