package printer

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// renderer is bound to stderr, where all diagnostics are written, so color
// detection follows stderr even when stdout is redirected.
var renderer = lipgloss.NewRenderer(os.Stderr)

// Style definitions for consistent diagnostic output.
var (
	faintStyle = renderer.NewStyle().Faint(true)
	errorStyle = renderer.NewStyle().Foreground(lipgloss.Color("1")) // Red
)

var noColor atomic.Bool

// SetNoColor disables (or re-enables) styling for all render functions.
// Re-enabling restores the profile detected from the stderr environment.
func SetNoColor(disable bool) {
	noColor.Store(disable)
	if disable {
		renderer.SetColorProfile(termenv.Ascii)
		return
	}
	renderer.SetColorProfile(termenv.NewOutput(os.Stderr).EnvColorProfile())
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return render(faintStyle, text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return render(errorStyle, text)
}

func render(style lipgloss.Style, text string) string {
	if noColor.Load() {
		return text
	}
	return style.Render(text)
}

// Fprint functions write styled text to w with a newline.

// FprintError writes text with error (red) styling.
func FprintError(w io.Writer, text string) {
	fmt.Fprintln(w, Error(text))
}

// FprintFaint writes text with faint styling.
func FprintFaint(w io.Writer, text string) {
	fmt.Fprintln(w, Faint(text))
}
