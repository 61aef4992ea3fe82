package refill

import "strings"

// Wrapper reflows text to a fixed column width. It is immutable after
// construction and safe for concurrent use.
type Wrapper struct {
	width         int
	lineSeparator string
}

// New returns a Wrapper with opts applied over the defaults: width 80,
// "\n" line separator.
func New(opts ...Option) *Wrapper {
	cfg := config{width: DefaultWidth, lineSeparator: defaultLineSeparator}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.width < 1 {
		cfg.width = 1
	}
	if cfg.lineSeparator == "" {
		cfg.lineSeparator = defaultLineSeparator
	}
	return &Wrapper{width: cfg.width, lineSeparator: cfg.lineSeparator}
}

// Fill reflows text to width using the defaults for everything else.
func Fill(text string, width int) string {
	return New(WithWidth(width)).Fill(text)
}

// Fill reflows every paragraph of text to the configured width. Paragraph
// separators (blank lines, possibly with a lone comment marker between
// them) are reproduced byte-for-byte between the reflowed paragraphs, and
// a trailing line terminator is kept if the input had one.
func (w *Wrapper) Fill(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	loc := 0
	for _, sep := range paragraphSeparatorPattern.FindAllStringIndex(text, -1) {
		b.WriteString(w.FillParagraph(text[loc:sep[0]]))
		b.WriteString(text[sep[0]:sep[1]])
		loc = sep[1]
	}
	if loc < len(text) {
		b.WriteString(w.FillParagraph(text[loc:]))
	}

	out := b.String()
	if strings.HasSuffix(text, w.lineSeparator) && !strings.HasSuffix(out, w.lineSeparator) {
		out += w.lineSeparator
	}
	return out
}

// FillParagraph reflows a single paragraph. Marker-only lines inside the
// paragraph (a bare " *" in a block comment, say) are preserved verbatim as
// breaks; the text runs between them are reflowed independently, each run
// using its own first line's indent. The result carries no trailing line
// separator; the caller owns inter-paragraph spacing.
func (w *Wrapper) FillParagraph(paragraph string) string {
	var b strings.Builder
	loc := 0
	for _, m := range emptyCommentLinePattern.FindAllStringIndex(paragraph, -1) {
		match := paragraph[m[0]:m[1]]
		// A zero-width match is a bare line position, not a marker line.
		if match == "" {
			continue
		}

		lines := w.breakToWidth(paragraph[loc:m[0]])

		if strings.HasPrefix(paragraph, match) {
			b.WriteString(match)
		}
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString(w.lineSeparator)
		}
		if strings.HasSuffix(paragraph, match) {
			b.WriteString(match)
		}
		loc = m[1]
	}

	if loc < len(paragraph) {
		for _, line := range w.breakToWidth(paragraph[loc:]) {
			b.WriteString(line)
			b.WriteString(w.lineSeparator)
		}
	}

	return strings.TrimSuffix(b.String(), w.lineSeparator)
}
