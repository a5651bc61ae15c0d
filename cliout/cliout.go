package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Symbols
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
)

var (
	mu           sync.RWMutex
	globalFormat           = FormatDefault
	noColor                = !isTerminal(os.Stdout)

	// out is nil until SetWriter is called; writer() then resolves
	// os.Stdout at call time so stdout redirection in tests is honored.
	out io.Writer
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ValidFormats returns the accepted --output values.
func ValidFormats() []string {
	return []string{string(FormatDefault), string(FormatJSON)}
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()

	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: %s)", format, strings.Join(ValidFormats(), ", "))
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// SetWriter redirects all output and returns the previous writer.
// Passing nil restores stdout.
func SetWriter(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

func writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	if out == nil {
		return os.Stdout
	}
	return out
}

// paint wraps s in color unless color is disabled.
func paint(color, s string) string {
	mu.RLock()
	disabled := noColor
	mu.RUnlock()
	if disabled {
		return s
	}
	return color + s + Reset
}

// PrintJSON writes data as indented JSON.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(writer())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format.
// For JSON format, marshals the data object; otherwise runs formatter.
func Print(data any, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider
func Header(text string) {
	fmt.Fprintf(writer(), "\n%s\n%s\n", paint(Bold, text), strings.Repeat("=", len(text)))
}

// Success prints a success message with green checkmark
func Success(format string, args ...any) {
	fmt.Fprintf(writer(), "%s %s\n", paint(BrightGreen, SymbolCheck), fmt.Sprintf(format, args...))
}

// Error prints an error message with red X
func Error(format string, args ...any) {
	fmt.Fprintf(writer(), "%s %s\n", paint(BrightRed, SymbolCross), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...any) {
	fmt.Fprintf(writer(), "%s  %s\n", paint(BrightYellow, SymbolWarning), fmt.Sprintf(format, args...))
}

// Info prints an info message with blue info icon
func Info(format string, args ...any) {
	fmt.Fprintf(writer(), "%s  %s\n", paint(BrightBlue, SymbolInfo), fmt.Sprintf(format, args...))
}

// Label prints a label and value pair. Empty values print as "(empty)" so a
// missing path or search part stays visible.
func Label(label, value string) {
	if value == "" {
		value = paint(Dim, "(empty)")
	}
	fmt.Fprintf(writer(), "   %-12s %s\n", label+":", value)
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...any) {
	fmt.Fprintf(writer(), format+"\n", args...)
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	var b strings.Builder

	b.WriteString("   ")
	for _, header := range headers {
		b.WriteString(paint(Bold, fmt.Sprintf("%-*s", widths[header], header)))
		b.WriteString("  ")
	}
	b.WriteString("\n   ")
	for _, header := range headers {
		b.WriteString(strings.Repeat("─", widths[header]) + "  ")
	}
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("   ")
		for _, header := range headers {
			fmt.Fprintf(&b, "%-*s  ", widths[header], row[header])
		}
		b.WriteString("\n")
	}

	fmt.Fprint(writer(), b.String())
}
