package cow

// Text is a copy-on-write text value. The zero value is a borrowed empty
// string.
type Text struct {
	s     string
	owned bool
}

// Borrow returns a Text sharing s's backing memory. No copy occurs; the
// result is only as valid as the memory backing s.
func Borrow(s string) Text {
	return Text{s: s}
}

// Own returns a Text holding s as independently owned content.
func Own(s string) Text {
	return Text{s: s, owned: true}
}

// Owned reports whether the value holds owned content rather than a borrow.
func (t Text) Owned() bool {
	return t.owned
}

// String returns the text content. Text implements fmt.Stringer.
func (t Text) String() string {
	return t.s
}

// Len returns the content length in bytes.
func (t Text) Len() int {
	return len(t.s)
}

// Equal reports whether the content equals s, regardless of the
// borrowed/owned tag.
func (t Text) Equal(s string) bool {
	return t.s == s
}
