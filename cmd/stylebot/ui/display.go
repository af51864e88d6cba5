// Package ui provides user interface components for the stylebot CLI.
package ui

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

var noColor bool

// SetNoColor disables colored output globally.
func SetNoColor(disabled bool) {
	noColor = disabled
	color.NoColor = disabled
}

// Table displays data in a formatted table.
func Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = strings.Repeat("-", len(headers[i]))
	}
	fmt.Fprintln(w, strings.Join(separator, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	_ = w.Flush()
}

// Box displays text in a box with borders.
func Box(title string, content string) {
	lines := strings.Split(content, "\n")
	maxWidth := len(title)
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}
	if maxWidth < 40 {
		maxWidth = 40
	}

	fmt.Printf("┌%s┐\n", strings.Repeat("─", maxWidth+2))
	if title != "" {
		fmt.Printf("│ %-*s │\n", maxWidth, title)
		fmt.Printf("├%s┤\n", strings.Repeat("─", maxWidth+2))
	}
	for _, line := range lines {
		fmt.Printf("│ %-*s │\n", maxWidth, line)
	}
	fmt.Printf("└%s┘\n", strings.Repeat("─", maxWidth+2))
}

// Message displays a plain message.
func Message(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
	fmt.Fprintln(os.Stdout)
}

// Success displays a success message.
func Success(format string, args ...interface{}) {
	if noColor {
		fmt.Printf("✓ %s\n", fmt.Sprintf(format, args...))
		return
	}
	color.New(color.FgGreen).Printf("✓ %s\n", fmt.Sprintf(format, args...))
}

// Error displays an error message to stderr.
func Error(format string, args ...interface{}) {
	if noColor {
		fmt.Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
		return
	}
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Warning displays a warning message.
func Warning(format string, args ...interface{}) {
	if noColor {
		fmt.Printf("⚠ %s\n", fmt.Sprintf(format, args...))
		return
	}
	color.New(color.FgYellow).Printf("⚠ %s\n", fmt.Sprintf(format, args...))
}

// Info displays an informational message.
func Info(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, "ℹ %s\n", fmt.Sprintf(format, args...))
}

// Prompt prints the interactive input prompt.
func Prompt(name string) {
	if noColor {
		fmt.Printf("%s> ", name)
		return
	}
	color.New(color.FgCyan, color.Bold).Printf("%s> ", name)
}
