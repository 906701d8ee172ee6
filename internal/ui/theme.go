package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and box borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, DoneText                            lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string

	// Frame draws the box around panels.
	Frame lipgloss.Style
}

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// NewTheme builds the named theme on renderer r. Unknown names fall back
// to classic.
func NewTheme(r *lipgloss.Renderer, name string) Theme {
	s := r.NewStyle
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        s().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        s().Foreground(lipgloss.Color("8")),
			Accent:       s().Foreground(lipgloss.Color("14")),
			Success:      s().Foreground(lipgloss.Color("10")),
			Error:        s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      s().Foreground(lipgloss.Color("11")),
			Selected:     s().Bold(true).Foreground(lipgloss.Color("13")),
			DoneText:     s().Faint(true).Strikethrough(true),
			BoxUnchecked: "◻",
			BoxChecked:   "◼",
			SymDone:      "✔",
			SymPending:   "•",
			Frame:        s().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1),
		}
	case "mono":
		return Theme{
			Name:         "mono",
			Title:        s(),
			Muted:        s(),
			Accent:       s(),
			Success:      s(),
			Error:        s(),
			Pending:      s(),
			Selected:     s(),
			DoneText:     s(),
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
			SymDone:      "x",
			SymPending:   "-",
			Frame:        s().Border(lipgloss.ASCIIBorder()).Padding(0, 1),
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        s().Bold(true),
			Muted:        s().Faint(true),
			Accent:       s().Foreground(lipgloss.Color("12")),
			Success:      s().Foreground(lipgloss.Color("42")),
			Error:        s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      s().Foreground(lipgloss.Color("214")),
			Selected:     s().Bold(true).Reverse(true),
			DoneText:     s().Faint(true).Strikethrough(true),
			BoxUnchecked: "☐",
			BoxChecked:   "☑",
			SymDone:      "✔",
			SymPending:   "•",
			Frame:        s().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		}
	}
}

// Box returns the checkbox symbol for done.
func (t Theme) Box(done bool) string {
	if done {
		return t.BoxChecked
	}
	return t.BoxUnchecked
}
