// Package ui renders terminal output: status lines, panels, progress bars.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Printer writes styled messages. Normal output goes to Out, failures to Err.
type Printer struct {
	Out, Err io.Writer
	Theme    Theme
}

// NewPrinter builds a Printer for the given color mode ("auto", "always",
// "never") and theme name. In auto mode color is used only when out is a
// terminal.
func NewPrinter(out, errw io.Writer, themeName, colorMode string) *Printer {
	r := NewRenderer(out, colorMode)
	return &Printer{Out: out, Err: errw, Theme: NewTheme(r, themeName)}
}

// NewRenderer returns a lipgloss renderer whose color profile follows
// colorMode.
func NewRenderer(out io.Writer, colorMode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	switch {
	case colorMode == "never":
		r.SetColorProfile(termenv.Ascii)
	case colorMode == "always":
		r.SetColorProfile(termenv.ANSI256)
	case !IsTerminal(out):
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Println writes a plain line to Out.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.Out, s)
}

// OK writes a success line to Out.
func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.Out, p.Theme.Success.Render(p.Theme.SymDone+" "+msg))
}

// Fail writes a failure line to Err.
func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.Err, p.Theme.Error.Render("✖ "+msg))
}

// Hint writes a muted line to Err.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.Err, p.Theme.Muted.Render(msg))
}
