package pdf

import "testing"

func charRun(text string, x0, y0 float64) []CharObject {
	chars := make([]CharObject, 0, len(text))
	for i, r := range text {
		chars = append(chars, CharObject{
			Text: string(r),
			X0:   x0 + float64(i)*5,
			Y0:   y0,
			X1:   x0 + float64(i+1)*5,
			Y1:   y0 + 10,
		})
	}
	return chars
}

func TestAssembleWordsSplitsAtGaps(t *testing.T) {
	chars := append(charRun("Net", 10, 100), charRun("100", 60, 100)...)

	words := assembleWords(chars)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0].Text != "Net" || words[1].Text != "100" {
		t.Errorf("got words %q and %q", words[0].Text, words[1].Text)
	}
	if words[0].X0 != 10 || words[0].X1 != 25 {
		t.Errorf("word bbox = (%v, %v), want (10, 25)", words[0].X0, words[0].X1)
	}
}

func TestAssembleWordsAdjacentCharsJoin(t *testing.T) {
	words := assembleWords(charRun("Revenue", 10, 100))
	if len(words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(words))
	}
	if words[0].Text != "Revenue" {
		t.Errorf("word = %q, want Revenue", words[0].Text)
	}
}

func TestAssembleWordsLineGrouping(t *testing.T) {
	chars := append(charRun("Total", 10, 100), charRun("100", 10, 130)...)

	words := assembleWords(chars)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0].Text != "Total" || words[1].Text != "100" {
		t.Errorf("got words %q and %q", words[0].Text, words[1].Text)
	}
}

func TestAssembleWordsXTolerance(t *testing.T) {
	// Gap of 8 between runs: split under the default tolerance, joined
	// at 10.
	chars := append(charRun("ab", 10, 100), charRun("cd", 28, 100)...)

	if words := assembleWords(chars); len(words) != 2 {
		t.Fatalf("default tolerance: expected 2 words, got %d", len(words))
	}
	if words := assembleWords(chars, WithXTolerance(10)); len(words) != 1 {
		t.Fatalf("wide tolerance: expected 1 word, got %d", len(words))
	}
}

func TestAssembleWordsEmpty(t *testing.T) {
	if words := assembleWords(nil); words != nil {
		t.Errorf("expected nil words, got %v", words)
	}
}

func TestTextFromWords(t *testing.T) {
	words := []Word{
		{Text: "100", X0: 60, Y0: 100, X1: 75, Y1: 110},
		{Text: "Net", X0: 10, Y0: 100, X1: 25, Y1: 110},
		{Text: "Total", X0: 10, Y0: 130, X1: 35, Y1: 140},
	}

	got := textFromWords(words)
	want := "Net 100\nTotal"
	if got != want {
		t.Errorf("textFromWords = %q, want %q", got, want)
	}
}

func TestTextFromWordsEmpty(t *testing.T) {
	if got := textFromWords(nil); got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}
