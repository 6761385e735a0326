// Package script lets lazytext step functions be written in Lua, so rewrite
// policies can be supplied at runtime instead of compiled in.
//
// A script is a Lua chunk that evaluates to a function. On each step the
// function receives the remaining input as a string and returns the number
// of bytes to consume, optionally followed by a replacement string:
//
//	-- double every 'a'
//	return function(rest)
//	    if rest:sub(1, 1) == "a" then
//	        return 1, "aa"
//	    end
//	    return 1
//	end
//
// Usage:
//
//	eng := script.New()
//	defer eng.Close()
//
//	step, err := eng.Compile("double_a", src)
//	if err != nil { ... }
//
//	out, err := script.Transform("abc", step) // owned "aabc"
//
// The Lua state is sandboxed: globals that load code or reach the host
// environment (os, io, load, require, ...) are removed before any user
// chunk runs. gopher-lua states are not goroutine-safe and the lazytext
// engine is synchronous anyway, so an Engine must be confined to one
// goroutine.
package script
