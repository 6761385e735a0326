// Package escape provides ready-made escaping transforms built on the
// lazytext engine. They double as worked examples of step functions: a
// stateless rune-at-a-time rewriter and a stateful one.
//
// Inputs that need no rewriting come back borrowed, without allocation:
//
//	escape.DoubleQuotes(`plain text`)        // borrowed, untouched
//	escape.DoubleQuotes(`a "quoted" word`)   // owned `a \"quoted\" word`
package escape
