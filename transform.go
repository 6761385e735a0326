package lazytext

import "github.com/dshills/lazytext/cow"

// A step function that consumes nothing would never terminate the scan.
// Treated as a programmer error, not a recoverable condition.
const panicZeroConsume = "lazytext: step function consumed no input"

// StepFunc inspects the front of the remaining input through the cursor,
// consumes at least one byte of it, and reports whether the consumed span
// is kept verbatim or replaced. It is never invoked with an empty remainder.
//
// Consuming zero bytes is a contract violation and panics. Panics raised by
// the step function itself propagate unchanged.
type StepFunc func(*Cursor) Outcome

// Transform scans input left to right, invoking step once per consumed
// span, and assembles the result as lazily as possible.
//
// While every outcome is Unchanged, nothing is copied. On the first Changed
// outcome, everything scanned before that span is copied once into an owned
// buffer (the only catch-up copy that can ever occur); from then on,
// unchanged spans are appended verbatim and changed spans are replaced. If
// no outcome is ever Changed, the result borrows input directly.
//
// An empty input returns a borrowed result immediately; step is never
// invoked. Each span's bytes are visited exactly once: the scan is a single
// O(n) pass with no re-reading of already-processed text.
func Transform(input string, step StepFunc) cow.Text {
	var acc *cow.Builder
	cur := Cursor{rest: input}

	for !cur.Empty() {
		before := cur.Len()
		out := step(&cur)
		consumed := before - cur.Len()
		if consumed < 1 {
			panic(panicZeroConsume)
		}

		spanEnd := len(input) - cur.Len()
		spanStart := spanEnd - consumed

		switch {
		case out.IsChanged():
			if acc == nil {
				// First divergence: catch up on the untouched prefix.
				acc = new(cow.Builder)
				acc.Grow(spanStart + len(out.Replacement()))
				acc.WriteString(input[:spanStart])
			}
			acc.WriteString(out.Replacement())
		case acc != nil:
			acc.WriteString(input[spanStart:spanEnd])
		}
	}

	if acc == nil {
		return cow.Borrow(input)
	}
	return acc.Text()
}
