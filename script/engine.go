package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Engine owns a sandboxed Lua state and compiles step scripts against it.
//
// gopher-lua's LState is NOT goroutine-safe. An Engine and every Step
// compiled from it must be used from a single goroutine.
type Engine struct {
	L      *lua.LState
	closed bool
}

// New creates an Engine with a fresh, sandboxed Lua state.
func New() *Engine {
	L := lua.NewState()
	sandbox(L)
	return &Engine{L: L}
}

// Close releases the Lua state. Steps compiled from this Engine become
// unusable.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

// Compile loads a Lua chunk that must evaluate to a step function
// (see the package documentation for the expected signature).
// name identifies the chunk in error messages.
func (e *Engine) Compile(name, src string) (*Step, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}

	fn, err := e.L.Load(strings.NewReader(src), name)
	if err != nil {
		return nil, fmt.Errorf("loading script %s: %w", name, err)
	}

	// Run the chunk; its return value is the step function.
	e.L.Push(fn)
	if err := e.L.PCall(0, 1, nil); err != nil {
		return nil, fmt.Errorf("evaluating script %s: %w", name, err)
	}
	ret := e.L.Get(-1)
	e.L.Pop(1)

	stepFn, ok := ret.(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("script %s: %w", name, ErrNotFunction)
	}
	return &Step{engine: e, name: name, fn: stepFn}, nil
}

// CompileFile reads path and compiles its contents. The chunk is named
// after the file's base name.
func (e *Engine) CompileFile(path string) (*Step, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return e.Compile(filepath.Base(path), string(src))
}

// sandbox removes globals that load arbitrary code or reach the host
// environment, before any user chunk runs.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile",
		"loadfile",
		"load",
		"loadstring",
		"require",
		"package",
		"os",
		"io",
		"debug",
	} {
		L.SetGlobal(name, lua.LNil)
	}
}
