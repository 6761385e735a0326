package script

import (
	"errors"
	"fmt"
)

// Errors returned by script compilation and execution.
var (
	// ErrNotFunction indicates a chunk did not evaluate to a function.
	ErrNotFunction = errors.New("script must return a function")

	// ErrBadConsume indicates a step returned a non-number, or consumed
	// less than one byte.
	ErrBadConsume = errors.New("step must return a positive byte count")

	// ErrBadReplacement indicates a step returned a replacement that is
	// neither a string nor nil.
	ErrBadReplacement = errors.New("replacement must be a string or nil")

	// ErrEngineClosed indicates use of an Engine after Close.
	ErrEngineClosed = errors.New("script engine is closed")
)

// Error wraps a failure raised while running a compiled step, carrying the
// chunk name it came from.
type Error struct {
	Chunk string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Chunk, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
