package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/lazytext"
	"github.com/dshills/lazytext/cow"
)

// Step is a compiled Lua step function bound to its Engine.
type Step struct {
	engine *Engine
	name   string
	fn     *lua.LFunction
}

// Name returns the chunk name the step was compiled under.
func (s *Step) Name() string {
	return s.name
}

// Func adapts the Step into an engine StepFunc. Lua errors and malformed
// returns surface as panics carrying *Error; use Transform to have them
// recovered into ordinary error returns.
func (s *Step) Func() lazytext.StepFunc {
	L := s.engine.L
	return func(c *lazytext.Cursor) lazytext.Outcome {
		if s.engine.closed {
			panic(&Error{Chunk: s.name, Err: ErrEngineClosed})
		}

		L.Push(s.fn)
		L.Push(lua.LString(c.Rest()))
		if err := L.PCall(1, 2, nil); err != nil {
			panic(&Error{Chunk: s.name, Err: err})
		}
		replv := L.Get(-1)
		nv := L.Get(-2)
		L.Pop(2)

		n, ok := nv.(lua.LNumber)
		if !ok || int(n) < 1 {
			panic(&Error{Chunk: s.name, Err: ErrBadConsume})
		}
		c.Take(int(n))

		if replv == lua.LNil {
			return lazytext.Unchanged()
		}
		repl, ok := replv.(lua.LString)
		if !ok {
			panic(&Error{Chunk: s.name, Err: ErrBadReplacement})
		}
		return lazytext.Changed(string(repl))
	}
}

// Transform applies a compiled step to input. Failures raised by the script
// (or malformed returns) come back as a *Error; the transform's laziness is
// unaffected — unchanged inputs return borrowed.
func Transform(input string, step *Step) (t cow.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			serr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = serr
		}
	}()
	return lazytext.Transform(input, step.Func()), nil
}
