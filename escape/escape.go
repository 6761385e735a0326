package escape

import (
	"github.com/dshills/lazytext"
	"github.com/dshills/lazytext/cow"
)

// DoubleQuotes replaces every `\` and `"` in s with `\\` and `\"`, as
// lazily as possible. Strings containing neither come back borrowed.
func DoubleQuotes(s string) cow.Text {
	return lazytext.Transform(s, func(c *lazytext.Cursor) lazytext.Outcome {
		r, _ := c.Next()
		switch r {
		case '\\', '"':
			return lazytext.Changed(`\` + string(r))
		default:
			return lazytext.Unchanged()
		}
	})
}

// UnescapeBackslashed replaces every `\` followed by a rune with that rune,
// as lazily as possible. A `\\` pair therefore collapses to a single `\`;
// a trailing lone `\` is dropped. Strings without backslashes come back
// borrowed.
func UnescapeBackslashed(s string) cow.Text {
	escaped := false
	return lazytext.Transform(s, func(c *lazytext.Cursor) lazytext.Outcome {
		r, _ := c.Next()
		if r == '\\' && !escaped {
			escaped = true
			return lazytext.Changed("")
		}
		escaped = false
		return lazytext.Unchanged()
	})
}
