package lazytext

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Cursor is the mutable view over the unprocessed remainder of the input.
// The engine hands a Cursor to the step function once per invocation; the
// step function must consume at least one byte from the front before
// returning. All consumption is front-only and irreversible within an
// invocation.
//
// A Cursor is only valid for the duration of the invocation it was passed
// to; step functions must not retain it.
type Cursor struct {
	rest string
}

// Rest returns the unconsumed remainder.
func (c *Cursor) Rest() string {
	return c.rest
}

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int {
	return len(c.rest)
}

// Empty reports whether the remainder has been fully consumed.
func (c *Cursor) Empty() bool {
	return len(c.rest) == 0
}

// Peek returns the first rune of the remainder without consuming it.
// ok is false if the remainder is empty.
func (c *Cursor) Peek() (r rune, ok bool) {
	if len(c.rest) == 0 {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.rest)
	return r, true
}

// Next consumes and returns the first rune of the remainder.
// ok is false if the remainder is empty, in which case nothing is consumed.
func (c *Cursor) Next() (r rune, ok bool) {
	if len(c.rest) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.rest)
	c.rest = c.rest[size:]
	return r, true
}

// NextGrapheme consumes and returns the first grapheme cluster of the
// remainder. A grapheme cluster is a user-perceived character and may span
// multiple runes (e.g. emoji with modifiers, combining marks).
// ok is false if the remainder is empty.
func (c *Cursor) NextGrapheme() (cluster string, ok bool) {
	if len(c.rest) == 0 {
		return "", false
	}
	cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(c.rest, -1)
	c.rest = rest
	return cluster, true
}

// Take consumes and returns up to n bytes from the front of the remainder.
// n is clamped to the remaining length. Callers working with multi-byte
// runes are responsible for keeping n on a rune boundary.
func (c *Cursor) Take(n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(c.rest) {
		n = len(c.rest)
	}
	taken := c.rest[:n]
	c.rest = c.rest[n:]
	return taken
}

// TakeWhile consumes and returns the maximal prefix of the remainder whose
// runes all satisfy pred. The returned prefix may be empty.
func (c *Cursor) TakeWhile(pred func(rune) bool) string {
	end := len(c.rest)
	for i, r := range c.rest {
		if !pred(r) {
			end = i
			break
		}
	}
	taken := c.rest[:end]
	c.rest = c.rest[end:]
	return taken
}

// TakePrefix consumes prefix from the front of the remainder if present.
// It reports whether the prefix was consumed.
func (c *Cursor) TakePrefix(prefix string) bool {
	if !strings.HasPrefix(c.rest, prefix) {
		return false
	}
	c.rest = c.rest[len(prefix):]
	return true
}
