package pdf

import (
	"math"
	"sort"
)

// floatTolerance for coordinate comparisons between line objects.
const floatTolerance = 0.1

// deduplicateLines removes lines drawn more than once (common in
// presentation exports where borders are stroked per cell).
func deduplicateLines(lines []LineObject) []LineObject {
	if len(lines) == 0 {
		return lines
	}

	sorted := make([]LineObject, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].Y0-sorted[j].Y0) > floatTolerance {
			return sorted[i].Y0 < sorted[j].Y0
		}
		if math.Abs(sorted[i].X0-sorted[j].X0) > floatTolerance {
			return sorted[i].X0 < sorted[j].X0
		}
		if math.Abs(sorted[i].Y1-sorted[j].Y1) > floatTolerance {
			return sorted[i].Y1 < sorted[j].Y1
		}
		return sorted[i].X1 < sorted[j].X1
	})

	result := []LineObject{sorted[0]}
	for _, line := range sorted[1:] {
		if !linesEqual(result[len(result)-1], line) {
			result = append(result, line)
		}
	}
	return result
}

// linesEqual checks if two lines coincide, in either direction.
func linesEqual(a, b LineObject) bool {
	same := math.Abs(a.X0-b.X0) < floatTolerance &&
		math.Abs(a.Y0-b.Y0) < floatTolerance &&
		math.Abs(a.X1-b.X1) < floatTolerance &&
		math.Abs(a.Y1-b.Y1) < floatTolerance

	reversed := math.Abs(a.X0-b.X1) < floatTolerance &&
		math.Abs(a.Y0-b.Y1) < floatTolerance &&
		math.Abs(a.X1-b.X0) < floatTolerance &&
		math.Abs(a.Y1-b.Y0) < floatTolerance

	return same || reversed
}
