package pdf

import "testing"

func TestDeduplicateLines(t *testing.T) {
	lines := []LineObject{
		{X0: 50, Y0: 100, X1: 250, Y1: 100},
		{X0: 50, Y0: 100, X1: 250, Y1: 100},
		// Same line drawn in the opposite direction.
		{X0: 250, Y0: 100, X1: 50, Y1: 100},
		{X0: 50, Y0: 120, X1: 250, Y1: 120},
	}

	got := deduplicateLines(lines)
	if len(got) != 2 {
		t.Errorf("expected 2 distinct lines, got %d", len(got))
	}
}
