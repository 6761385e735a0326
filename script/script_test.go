package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const doubleASrc = `
return function(rest)
	if string.sub(rest, 1, 1) == "a" then
		return 1, "aa"
	end
	return 1
end
`

func TestCompileAndTransform(t *testing.T) {
	eng := New()
	defer eng.Close()

	step, err := eng.Compile("double_a", doubleASrc)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	tests := []struct {
		name      string
		input     string
		want      string
		wantOwned bool
	}{
		{"divergent", "abc", "aabc", true},
		{"untouched", "bcd", "bcd", false},
		{"empty", "", "", false},
		{"all divergent", "aab", "aaaab", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform(tt.input, step)
			if err != nil {
				t.Fatalf("Transform: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("content = %q, want %q", got.String(), tt.want)
			}
			if got.Owned() != tt.wantOwned {
				t.Errorf("Owned() = %v, want %v", got.Owned(), tt.wantOwned)
			}
		})
	}
}

func TestCompileStatefulStep(t *testing.T) {
	// Upvalues persist across invocations: strip one level of backslash
	// escaping, the stateful way.
	src := `
local escaped = false
return function(rest)
	local c = string.sub(rest, 1, 1)
	if c == "\\" and not escaped then
		escaped = true
		return 1, ""
	end
	escaped = false
	return 1
end
`
	eng := New()
	defer eng.Close()

	step, err := eng.Compile("unescape", src)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := Transform(`a\\b\"c`, step)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if !got.Equal(`a\b"c`) {
		t.Errorf("content = %q, want %q", got.String(), `a\b"c`)
	}
}

func TestCompileNotFunction(t *testing.T) {
	eng := New()
	defer eng.Close()

	if _, err := eng.Compile("bad", "return 42"); !errors.Is(err, ErrNotFunction) {
		t.Errorf("err = %v, want ErrNotFunction", err)
	}
}

func TestCompileSyntaxError(t *testing.T) {
	eng := New()
	defer eng.Close()

	if _, err := eng.Compile("broken", "return function("); err == nil {
		t.Error("expected load error for broken source")
	}
}

func TestCompileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "double_a.lua")
	if err := os.WriteFile(path, []byte(doubleASrc), 0o644); err != nil {
		t.Fatal(err)
	}

	eng := New()
	defer eng.Close()

	step, err := eng.CompileFile(path)
	if err != nil {
		t.Fatalf("CompileFile: %v", err)
	}
	if step.Name() != "double_a.lua" {
		t.Errorf("Name() = %q, want %q", step.Name(), "double_a.lua")
	}

	got, err := Transform("abc", step)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if !got.Equal("aabc") {
		t.Errorf("content = %q, want %q", got.String(), "aabc")
	}
}

func TestTransformBadConsume(t *testing.T) {
	eng := New()
	defer eng.Close()

	step, err := eng.Compile("lazy", "return function(rest) return 0 end")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := Transform("abc", step); !errors.Is(err, ErrBadConsume) {
		t.Errorf("err = %v, want ErrBadConsume", err)
	}
}

func TestTransformBadReplacement(t *testing.T) {
	eng := New()
	defer eng.Close()

	step, err := eng.Compile("bad_repl", "return function(rest) return 1, {} end")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := Transform("abc", step); !errors.Is(err, ErrBadReplacement) {
		t.Errorf("err = %v, want ErrBadReplacement", err)
	}
}

func TestTransformScriptError(t *testing.T) {
	eng := New()
	defer eng.Close()

	step, err := eng.Compile("boom", `return function(rest) error("refused") end`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	_, err = Transform("abc", step)
	if err == nil {
		t.Fatal("expected error from failing script")
	}
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("err = %T, want *Error", err)
	}
	if serr.Chunk != "boom" {
		t.Errorf("Chunk = %q, want %q", serr.Chunk, "boom")
	}
}

func TestSandboxBlocksHostAccess(t *testing.T) {
	eng := New()
	defer eng.Close()

	step, err := eng.Compile("hostile", "return function(rest) return os.remove(rest) end")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := Transform("abc", step); err == nil {
		t.Error("expected error: os should be unavailable in the sandbox")
	}
}

func TestEngineClosed(t *testing.T) {
	eng := New()
	eng.Close()
	eng.Close() // double close is a no-op

	if _, err := eng.Compile("late", doubleASrc); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("err = %v, want ErrEngineClosed", err)
	}
}
