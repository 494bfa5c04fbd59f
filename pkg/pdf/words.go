package pdf

import (
	"sort"
	"strings"
)

// defaultWordConfig matches pdfplumber's default grouping tolerances.
func defaultWordConfig(opts []WordExtractionOption) *wordExtractionConfig {
	config := &wordExtractionConfig{
		XTolerance: 3.0,
		YTolerance: 3.0,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// assembleWords groups page characters into words: characters are sorted
// top-to-bottom then left-to-right, clustered into lines by the vertical
// tolerance, and split into words at horizontal gaps.
func assembleWords(chars []CharObject, opts ...WordExtractionOption) []Word {
	config := defaultWordConfig(opts)
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]CharObject, len(chars))
	copy(sorted, chars)
	sort.Slice(sorted, func(i, j int) bool {
		if abs(sorted[i].Y0-sorted[j].Y0) > config.YTolerance {
			return sorted[i].Y0 < sorted[j].Y0
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines [][]CharObject
	currentLine := []CharObject{sorted[0]}
	currentY := sorted[0].Y0

	for _, char := range sorted[1:] {
		if abs(char.Y0-currentY) > config.YTolerance {
			lines = append(lines, currentLine)
			currentLine = []CharObject{char}
			currentY = char.Y0
		} else {
			currentLine = append(currentLine, char)
		}
	}
	lines = append(lines, currentLine)

	var words []Word
	for _, line := range lines {
		words = append(words, splitLineIntoWords(line, config.XTolerance)...)
	}
	return words
}

func splitLineIntoWords(lineChars []CharObject, xTolerance float64) []Word {
	if len(lineChars) == 0 {
		return nil
	}

	sort.Slice(lineChars, func(i, j int) bool {
		return lineChars[i].X0 < lineChars[j].X0
	})

	var words []Word
	current := []CharObject{lineChars[0]}

	for i := 1; i < len(lineChars); i++ {
		char := lineChars[i]
		gap := char.X0 - lineChars[i-1].X1
		if gap > xTolerance {
			words = append(words, newWord(current))
			current = []CharObject{char}
		} else {
			current = append(current, char)
		}
	}
	words = append(words, newWord(current))

	return words
}

// textFromWords renders words back into reading-order text: one line per
// word line, words separated by single spaces.
func textFromWords(words []Word) string {
	var b strings.Builder
	for _, line := range groupWordsIntoLines(words) {
		sort.Slice(line, func(i, j int) bool {
			return line[i].X0 < line[j].X0
		})
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		for i, word := range line {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(word.Text)
		}
	}
	return b.String()
}

func newWord(chars []CharObject) Word {
	var text strings.Builder
	minX, minY := chars[0].X0, chars[0].Y0
	maxX, maxY := chars[0].X1, chars[0].Y1

	for _, char := range chars {
		text.WriteString(char.Text)
		minX = min(minX, char.X0)
		minY = min(minY, char.Y0)
		maxX = max(maxX, char.X1)
		maxY = max(maxY, char.Y1)
	}

	return Word{
		Text:       text.String(),
		X0:         minX,
		Y0:         minY,
		X1:         maxX,
		Y1:         maxY,
		Characters: chars,
	}
}
