// Package config provides the small set of session-scoped settings the
// replay pipeline and its CLI front end need. Unlike a package-global
// singleton, a Config value is constructed once per session and threaded
// explicitly through the pieces that need it.
package config

import (
	"io"
	"os"
)

// Config holds the settings for a single replay session.
type Config struct {
	// Verbosity controls how much progress detail is written to LogFile.
	// 0 = errors only, 1 = per-move trace.
	Verbosity int

	// LogFile receives diagnostics: lexical, grammar, interpretation, and
	// board errors, and (at Verbosity > 0) a per-move trace.
	LogFile io.Writer

	// Colorize enables ANSI coloring of diagnostics written to LogFile.
	// The CLI only sets this when LogFile is a terminal.
	Colorize bool
}

// New returns a Config with default values: errors-only verbosity,
// diagnostics to stderr, no colorization.
func New() *Config {
	return &Config{
		Verbosity: 0,
		LogFile:   os.Stderr,
		Colorize:  false,
	}
}
