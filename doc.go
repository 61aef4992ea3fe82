// Package refill reflows prose and source-code comments to a column width.
//
// Refill works like an editor's fill-paragraph command, but it is aware of
// per-line comment markers: a hard-wrapped block of //, #, ; or *-style
// comment lines is joined into one logical line, rewrapped to the target
// width, and every produced line gets the indent and marker back. Blank
// lines (and marker-only lines such as a bare " *" between two line breaks)
// separate paragraphs and are reproduced byte-for-byte, so reflowing a
// comment never bleeds into surrounding code.
//
// Core properties:
//   - Pure string transformer; no I/O, no shared mutable state
//   - Paragraph separators and marker-only gap lines preserved verbatim
//   - Block-comment continuation lines use the conventional " * " prefix
//   - Overlong words are force-broken rather than left over-width
//
// Example:
//
//	w := refill.New(refill.WithWidth(40))
//	out := w.Fill("// A long comment line that should be rewrapped to forty columns.")
//	fmt.Println(out)
//
// A Wrapper is immutable after construction and safe for concurrent use.
package refill
