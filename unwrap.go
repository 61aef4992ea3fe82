package refill

import "strings"

// Unwrap joins a hard-wrapped chunk into one logical line. Each physical
// line loses its indent and comment marker; lines are joined with a single
// space so sentences stay separated. Empty lines contribute nothing but
// suppress the joining space for the line that follows them.
func Unwrap(text string) string {
	if text == "" {
		return text
	}
	lines := lineTerminators.Split(text, -1)
	var b strings.Builder
	gap := false
	for i, line := range lines {
		if line == "" {
			gap = true
			continue
		}
		content := strings.TrimSpace(splitIndent(line).rest)
		if i > 0 && !gap {
			b.WriteString(" ")
		}
		b.WriteString(content)
		gap = false
	}
	return b.String()
}
