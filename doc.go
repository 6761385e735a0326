// Package lazytext provides lazy, copy-on-write scanning transformations
// over strings.
//
// A transform is driven by a caller-supplied step function that is invoked
// repeatedly over the shrinking remainder of the input. On each invocation
// the step function consumes at least one byte from the front of the
// remainder and reports whether the consumed span stays in the output
// verbatim or is replaced. As long as every span is unchanged, no copying
// happens at all; the moment a span is first replaced, everything scanned
// so far is copied once into an owned buffer and the scan continues by
// appending into it. The result is either a borrow of the original input
// or that owned buffer.
//
// This is a good fit for (un)escaping text, especially when most inputs
// need no rewriting and individual strings are short.
//
// Basic usage:
//
//	doubleA := func(c *lazytext.Cursor) lazytext.Outcome {
//	    r, _ := c.Next()
//	    if r == 'a' {
//	        return lazytext.Changed("aa")
//	    }
//	    return lazytext.Unchanged()
//	}
//
//	lazytext.Transform("abc", doubleA) // owned "aabc"
//	lazytext.Transform("bcd", doubleA) // borrowed "bcd", no allocation
//
// The step function is the sole extension point: chunking policy
// (rune-at-a-time, grapheme-at-a-time, variable-length tokens) and rewrite
// rules live entirely in the caller. See the escape package for complete
// examples and the script package for step functions written in Lua.
package lazytext
