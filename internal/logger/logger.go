// Package logger provides the verbose diagnostic output used while compiling
// patterns and reading automata.
package logger

import (
	"fmt"
	"io"
	"os"
)

const prefix = "[regexfa] "

// Logger prints progress messages when enabled. Warnings are always printed.
// A nil *Logger discards everything.
type Logger struct {
	enabled bool
	out     io.Writer
}

// New creates a logger writing to stderr.
func New(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	if l == nil {
		return
	}
	l.out = w
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l == nil || !l.enabled {
		return
	}
	fmt.Fprintf(l.out, prefix+format+"\n", args...)
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l == nil || !l.enabled {
		return
	}
	fmt.Fprintf(l.out, "\n%s=== %s ===\n", prefix, name)
}

// Warn prints a diagnostic regardless of verbosity.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.out, prefix+"warning: "+format+"\n", args...)
}

// Enabled returns whether verbose output is on.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}
