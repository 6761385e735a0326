package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/lazytext/cow"
	"github.com/dshills/lazytext/escape"
	"github.com/dshills/lazytext/script"
)

// Errors returned by Run.
var (
	// ErrUnknownTransform indicates a transform name with no implementation.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrInPlaceNeedsFiles indicates -i was given without file arguments.
	ErrInPlaceNeedsFiles = errors.New("in-place mode requires file arguments")
)

// Options configures a run. Zero values fall back to config-file defaults.
type Options struct {
	// Transform is a named transform: escape or unescape.
	Transform string
	// ScriptPath points at a Lua step script; it overrides Transform.
	ScriptPath string
	// ConfigPath is the TOML config file. Missing files are ignored.
	ConfigPath string
	// Output is the output file path; empty writes to stdout.
	Output string
	// InPlace rewrites input files in place, skipping unchanged ones.
	InPlace bool
	// LogLevel overrides the configured log level.
	LogLevel string
	// Files are the input files; empty reads stdin.
	Files []string
}

// TransformFunc applies one transform to a whole input.
type TransformFunc func(string) (cow.Text, error)

// App ties options, configuration and logging together for one run.
type App struct {
	opts   Options
	log    *Logger
	apply  TransformFunc
	engine *script.Engine // non-nil only when a Lua script is in use

	stdin  io.Reader
	stdout io.Writer
}

// NewApp resolves opts against the config file and prepares the transform.
// Call Close when done.
func NewApp(opts Options, stdin io.Reader, stdout io.Writer) (*App, error) {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := opts.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}

	a := &App{
		opts:   opts,
		log:    NewLogger(ParseLogLevel(level), nil),
		stdin:  stdin,
		stdout: stdout,
	}

	if opts.ScriptPath != "" {
		a.engine = script.New()
		step, err := a.engine.CompileFile(opts.ScriptPath)
		if err != nil {
			a.engine.Close()
			return nil, err
		}
		a.apply = func(s string) (cow.Text, error) {
			return script.Transform(s, step)
		}
		return a, nil
	}

	name := opts.Transform
	if name == "" {
		name = cfg.Transform
	}
	a.apply, err = namedTransform(name)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Logger returns the run's logger.
func (a *App) Logger() *Logger {
	return a.log
}

// Close releases the script engine, if any.
func (a *App) Close() {
	if a.engine != nil {
		a.engine.Close()
	}
}

// namedTransform maps a transform name to its implementation.
func namedTransform(name string) (TransformFunc, error) {
	switch name {
	case "escape":
		return func(s string) (cow.Text, error) {
			return escape.DoubleQuotes(s), nil
		}, nil
	case "unescape":
		return func(s string) (cow.Text, error) {
			return escape.UnescapeBackslashed(s), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
}

// Run executes the transform over stdin or the input files.
func (a *App) Run() error {
	if a.opts.InPlace {
		if len(a.opts.Files) == 0 {
			return ErrInPlaceNeedsFiles
		}
		for _, path := range a.opts.Files {
			if err := a.rewriteFile(path); err != nil {
				return err
			}
		}
		return nil
	}

	out := a.stdout
	if a.opts.Output != "" {
		f, err := os.Create(a.opts.Output)
		if err != nil {
			return fmt.Errorf("creating output file %s: %w", a.opts.Output, err)
		}
		defer f.Close()
		out = f
	}

	if len(a.opts.Files) == 0 {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return a.transformTo(out, "<stdin>", string(data))
	}

	for _, path := range a.opts.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := a.transformTo(out, path, string(data)); err != nil {
			return err
		}
	}
	return nil
}

// transformTo applies the transform to input and writes the result to out.
func (a *App) transformTo(out io.Writer, name, input string) error {
	result, err := a.apply(input)
	if err != nil {
		return fmt.Errorf("transforming %s: %w", name, err)
	}
	a.log.Debug("transformed %s: %d bytes in, %d bytes out, owned=%v",
		name, len(input), result.Len(), result.Owned())

	if _, err := io.WriteString(out, result.String()); err != nil {
		return fmt.Errorf("writing output for %s: %w", name, err)
	}
	return nil
}

// rewriteFile transforms path and writes the result back, preserving the
// file mode. Files whose content did not change are left untouched.
func (a *App) rewriteFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := a.apply(string(data))
	if err != nil {
		return fmt.Errorf("transforming %s: %w", path, err)
	}
	if !result.Owned() {
		// Borrowed result means nothing changed; skip the write.
		a.log.Debug("unchanged %s: skipped", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(result.String()), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	a.log.Info("rewrote %s: %d bytes -> %d bytes", path, len(data), result.Len())
	return nil
}
