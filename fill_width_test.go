package refill

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestFillWidthBounds(t *testing.T) {
	src := strings.Join([]string{
		"// A comment paragraph with a number of short words to wrap cleanly at small widths.",
		"",
		"# Hash comment paragraph with more short words that should wrap within the budget.",
		"",
		"Plain prose paragraph that also needs to wrap within the width budget every time.",
	}, "\n")

	for width := 20; width <= 100; width += 5 {
		out := Fill(src, width)
		for i, line := range strings.Split(out, "\n") {
			if ansi.PrintableRuneWidth(line) > width {
				t.Fatalf("width %d: line %d exceeds budget: %q", width, i+1, line)
			}
		}
		if got := strings.Count(out, "\n\n"); got != 2 {
			t.Fatalf("width %d: expected 2 paragraph separators, got %d\n%q", width, got, out)
		}
	}
}
