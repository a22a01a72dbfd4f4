package ui

import "fmt"

const (
	symbolOK   = "✓"
	symbolFail = "✗"
	symbolWarn = "⚠"
)

func mark(symbol, msg string) string {
	return symbol + " " + msg
}

// Successf prefixes a confirmation line with a check mark.
func Successf(format string, args ...interface{}) string {
	return mark(symbolOK, fmt.Sprintf(format, args...))
}

// Error formats a failure for stderr.
func Error(msg string) string {
	return mark(symbolFail, msg)
}

// Warningf formats a partial-success notice for stderr.
func Warningf(format string, args ...interface{}) string {
	return mark(symbolWarn, fmt.Sprintf(format, args...))
}

// Header renders a bold heading line.
func Header(msg string) string { return Bold.Render(msg) }

// FilePath and VaultName share the accent color.
func FilePath(path string) string { return Accent.Render(path) }

func VaultName(name string) string { return Accent.Render(name) }

// Timestamp and Hint are muted.
func Timestamp(stamp string) string { return Muted.Render(stamp) }

func Hint(msg string) string { return Muted.Render(msg) }

// Count returns a count with the right noun form, e.g. "3 notes".
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
