// Package ui renders user-facing progress markers and spinners.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	stepColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
)

// NoColor disables color output.
func NoColor() {
	color.NoColor = true
}

// Successf prints a completed-step line ("✓ ...").
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", successColor.Sprint("✓"), fmt.Sprintf(format, args...))
}

// Stepf prints an in-progress line ("→ ...").
func Stepf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", stepColor.Sprint("→"), fmt.Sprintf(format, args...))
}

// Warnf prints a degraded-continue line ("⚠ ...").
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", warnColor.Sprint("⚠"), fmt.Sprintf(format, args...))
}

// Failf prints a fatal-step line ("✗ ...").
func Failf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", failColor.Sprint("✗"), fmt.Sprintf(format, args...))
}

// Plainf prints an unmarked informational line.
func Plainf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
