package refill

import (
	"regexp"
	"strings"
)

// commentMarkers matches at most one token from the flat marker table:
// block-comment open, block-comment close, star, dot, hash run, slash run,
// semicolon run. This is pattern matching, not language awareness.
const commentMarkers = `(/\*+|\*/|\*|\.|#+|//+|;+)?`

const lineBreak = `(\n|\r\n)`

var (
	// indentPattern captures a line's leading whitespace and optional
	// comment marker.
	indentPattern = regexp.MustCompile(`^\s*` + commentMarkers + `\s*`)

	// emptyCommentLinePattern matches a line that is only an indent/marker,
	// e.g. a bare " *" inside a block comment.
	emptyCommentLinePattern = regexp.MustCompile(`(?m)^\s*` + commentMarkers + `\s*$`)

	// paragraphSeparatorPattern matches two line breaks bracketing at most
	// one marker-only line. Such a gap separates paragraphs.
	paragraphSeparatorPattern = regexp.MustCompile(lineBreak + `\s*` + commentMarkers + `\s*` + lineBreak)

	blockOpenerPattern       = regexp.MustCompile(`^\s*/\*+`)
	leadingWhitespacePattern = regexp.MustCompile(`^\s*`)
	lineTerminators          = regexp.MustCompile(`[\r\n]+`)
)

// lineParts is a line split into its indent and everything after it.
type lineParts struct {
	indent string
	rest   string
}

// splitIndent separates a line's leading whitespace plus optional comment
// marker from the remaining content. Only the first qualifying match is
// taken, so a marker nested inside a comment body is never re-interpreted.
// An empty match means no indent: rest is the line untouched, not trimmed.
func splitIndent(line string) lineParts {
	loc := indentPattern.FindStringIndex(line)
	if loc == nil || loc[1] == 0 {
		return lineParts{rest: line}
	}
	// The match can drag a terminator into the indent ("/*\n"), strip it.
	indent := lineTerminators.ReplaceAllString(line[:loc[1]], "")
	return lineParts{indent: indent, rest: strings.TrimSpace(line[loc[1]:])}
}
