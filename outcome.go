package lazytext

// Outcome reports what happens to the span consumed by one step invocation:
// it either stays in the output verbatim or is replaced.
type Outcome struct {
	changed     bool
	replacement string
}

// Unchanged keeps the consumed span verbatim in the output.
func Unchanged() Outcome {
	return Outcome{}
}

// Changed replaces the consumed span with replacement in the output.
// The replacement may be shorter, longer, or empty.
func Changed(replacement string) Outcome {
	return Outcome{changed: true, replacement: replacement}
}

// IsChanged reports whether the consumed span is replaced.
func (o Outcome) IsChanged() bool {
	return o.changed
}

// Replacement returns the replacement text. It is empty for Unchanged
// outcomes.
func (o Outcome) Replacement() string {
	return o.replacement
}
