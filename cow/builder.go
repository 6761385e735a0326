package cow

import "strings"

// Builder accumulates owned text content. The zero value is ready to use.
//
// Builder exists to assemble the owned arm of a Text: append with
// WriteString, then call Text exactly once. Like strings.Builder, a Builder
// must not be copied after first use.
type Builder struct {
	sb strings.Builder
}

// Grow reserves capacity for at least n more bytes.
func (b *Builder) Grow(n int) {
	b.sb.Grow(n)
}

// WriteString appends s to the accumulated content.
func (b *Builder) WriteString(s string) {
	// strings.Builder never returns an error.
	b.sb.WriteString(s)
}

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int {
	return b.sb.Len()
}

// Text returns the accumulated content as an owned Text. No copy is made;
// the Builder must not be written to afterwards.
func (b *Builder) Text() Text {
	return Own(b.sb.String())
}
