package cli

import (
	"fmt"

	"github.com/idilsaglam/mdtodo/internal/model"
	"github.com/idilsaglam/mdtodo/internal/ui"
)

const maxPrettyWidth = 80

// prettyLines builds the framed list view: counts, progress bar, items.
// Item numbers always match the positions used by done and remove.
func prettyLines(t ui.Theme, items []model.Item, group bool) []string {
	done, pending := 0, 0
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}

	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			t.Title.Render("Todos"),
			t.Success.Render(t.SymDone), done,
			t.Pending.Render(t.SymPending), pending,
			t.Accent.Render("Total"), len(items),
		),
		t.Muted.Render(ui.ProgressBar(done, len(items), 28)),
		"",
	}

	if group {
		lines = append(lines, groupLines(t, items)...)
	} else {
		lines = append(lines, flatLines(t, items, func(model.Item) bool { return true })...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	return lines
}

func flatLines(t ui.Theme, items []model.Item, keep func(model.Item) bool) []string {
	var out []string
	for i, it := range items {
		if !keep(it) {
			continue
		}
		box := t.Muted.Render(t.Box(false))
		text := it.Text
		if it.Done {
			box = t.Success.Render(t.Box(true))
		}
		if r := []rune(text); len(r) > maxPrettyWidth {
			text = string(r[:maxPrettyWidth-3]) + "..."
		}
		if it.Done {
			text = t.DoneText.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), box, text))
	}
	if len(out) == 0 {
		return []string{t.Muted.Render("(none)")}
	}
	return out
}

func groupLines(t ui.Theme, items []model.Item) []string {
	lines := []string{t.Accent.Render("Pending")}
	lines = append(lines, flatLines(t, items, func(it model.Item) bool { return !it.Done })...)
	lines = append(lines, "", t.Accent.Render("Done"))
	lines = append(lines, flatLines(t, items, func(it model.Item) bool { return it.Done })...)
	return lines
}
