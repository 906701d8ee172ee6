package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders a bar with a percentage, e.g. "██████░░░░  60%".
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	pct := done * 100 / total
	return fmt.Sprintf("%s%s %3d%%", strings.Repeat("█", filled), strings.Repeat("░", width-filled), pct)
}

// PanelString frames lines in a bordered box using the theme.
func (t Theme) PanelString(lines []string) string {
	return t.Frame.Render(strings.Join(lines, "\n"))
}

// Panel writes a framed box to Out.
func (p *Printer) Panel(lines []string) {
	fmt.Fprintln(p.Out, p.Theme.PanelString(lines))
}
