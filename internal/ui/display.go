package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultTermWidth is the fallback terminal width when detection fails.
const DefaultTermWidth = 100

// DisplayContext describes where list output is going.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext inspects stdout. Piped output is never styled, so the
// width only matters on a terminal.
func NewDisplayContext() *DisplayContext {
	ctx := &DisplayContext{TermWidth: DefaultTermWidth}
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return ctx
	}
	ctx.IsTTY = true
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		ctx.TermWidth = w
	}
	return ctx
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
