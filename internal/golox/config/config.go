// Package config parses golox's small set of command-line flags and
// environment conventions. Lox itself has no configuration file; this
// exists purely for the REPL's cosmetic knobs (SPEC_FULL.md §E3).
//
// No CLI-flag library (cobra, urfave/cli, spf13/pflag, ...) appears
// anywhere in the retrieved example pack, so this stays on the standard
// library's flag package rather than reaching for one with nothing in
// the corpus to ground it against.
package config

import (
	"flag"
	"os"

	"github.com/fatih/color"
)

// Config holds the parsed REPL flags.
type Config struct {
	ShowBanner bool
	Prompt     string
}

// Parse reads flags from args (typically os.Args[1:] once any
// positional file argument has been stripped by the caller) and applies
// the NO_COLOR environment convention to the fatih/color package.
func Parse(args []string) *Config {
	fs := flag.NewFlagSet("golox", flag.ContinueOnError)
	showBanner := fs.Bool("banner", true, "show the startup banner in REPL mode")
	prompt := fs.String("prompt", "> ", "REPL prompt string")
	fs.SetOutput(os.Stderr)
	_ = fs.Parse(args)

	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		color.NoColor = true
	}

	return &Config{ShowBanner: *showBanner, Prompt: *prompt}
}
