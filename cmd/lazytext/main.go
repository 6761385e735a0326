// Package main is the entry point for the lazytext command line tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dshills/lazytext/internal/cli"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 0
	}

	app, err := cli.NewApp(opts, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer app.Close()

	// Reading from an interactive terminal is almost always a mistake for
	// a pipe filter; point the user at the help instead of blocking.
	if len(opts.Files) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "reading from terminal; pipe input or pass files (-h for help)")
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (cli.Options, bool) {
	var opts cli.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.Transform, "transform", "", "Named transform (escape, unescape)")
	flag.StringVar(&opts.Transform, "t", "", "Named transform (shorthand)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Path to a Lua step script")
	flag.StringVar(&opts.ScriptPath, "s", "", "Path to a Lua step script (shorthand)")
	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Output, "output", "", "Output file (defaults to stdout)")
	flag.StringVar(&opts.Output, "o", "", "Output file (shorthand)")
	flag.BoolVar(&opts.InPlace, "i", false, "Rewrite input files in place")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lazytext - lazy copy-on-write text transforms\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lazytext [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  echo 'a \"quoted\" word' | lazytext -t escape\n")
		fmt.Fprintf(os.Stderr, "  lazytext -t unescape -i notes.txt\n")
		fmt.Fprintf(os.Stderr, "  lazytext -s double_a.lua input.txt\n")
	}

	flag.Parse()
	opts.Files = flag.Args()

	if showHelp {
		flag.Usage()
		return opts, false
	}
	if showVersion {
		fmt.Printf("lazytext %s (commit %s, built %s)\n", version, commit, date)
		return opts, false
	}
	return opts, true
}
