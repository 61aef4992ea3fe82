package refill

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// blockContinuation is the conventional prefix for lines inside a /* block.
const blockContinuation = " * "

// breakToWidth reflows one chunk into physical lines at the configured
// width. The chunk's first line supplies the indent for every produced
// line, except that a block-comment opener switches continuation lines to
// its leading whitespace plus " * ". There is no smarter inference: a "//"
// opener's indent is simply repeated. That limitation is intentional.
func (w *Wrapper) breakToWidth(text string) []string {
	first := splitIndent(text)
	limit := w.width - len(first.indent)
	if limit < 1 {
		limit = 1
	}

	// Greedy word-wrap of the logical line; wrap force-breaks anything
	// still over the limit, so an overlong word never escapes the budget.
	// Breakpoints are cleared: breaking at hyphens would let Unwrap rejoin
	// the halves with a space, changing the word sequence.
	ww := wordwrap.NewWriter(limit)
	ww.Breakpoints = nil
	_, _ = ww.Write([]byte(Unwrap(text)))
	_ = ww.Close()
	wrapped := wrap.String(ww.String(), limit)
	lines := strings.Split(wrapped, "\n")

	continuation := first.indent
	if blockOpenerPattern.MatchString(first.indent) {
		continuation = leadingWhitespacePattern.FindString(first.indent) + blockContinuation
	}

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == 0 {
			out = append(out, first.indent+line)
			continue
		}
		out = append(out, continuation+line)
	}
	return out
}
