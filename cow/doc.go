// Package cow provides a copy-on-write text value: a string result tagged
// as either borrowed (sharing the backing memory of caller-owned input, no
// allocation) or owned (an independently built buffer).
//
// The tag carries intent, not behavior: both arms read identically through
// String. It exists so callers and tests can verify that a transformation
// really did avoid allocating when nothing changed.
//
// Builder is the growable accumulator used to assemble owned results. Its
// Text method hands the accumulated content off without a final copy.
package cow
