package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/mdtodo/internal/ui"
)

func TestProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		done, total, width int
		want               string
	}{
		{"empty list", 0, 0, 10, "░░░░░░░░░░   0%"},
		{"half", 1, 2, 10, "█████░░░░░  50%"},
		{"all", 3, 3, 10, "██████████ 100%"},
		{"minimum width", 0, 4, 1, "░░░░░   0%"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ui.ProgressBar(tc.done, tc.total, tc.width))
		})
	}
}

func TestPrinterWithoutColor(t *testing.T) {
	t.Parallel()

	var out, errw bytes.Buffer
	p := ui.NewPrinter(&out, &errw, "mono", "never")

	p.OK("added")
	p.Fail("boom")
	p.Hint("try again")
	p.Println("plain")

	assert.Equal(t, "x added\nplain\n", out.String())
	assert.Equal(t, "✖ boom\ntry again\n", errw.String())
}

func TestPrinterNoColorWhenNotTerminal(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := ui.NewPrinter(&out, &out, "classic", "auto")
	p.OK("saved")

	assert.Equal(t, "✔ saved\n", out.String())
	assert.False(t, ui.IsTerminal(&out))
}

func TestPanel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := ui.NewPrinter(&out, &out, "mono", "never")
	p.Panel([]string{"one", "three"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "+-------+", lines[0])
	assert.Equal(t, "| one   |", lines[1])
	assert.Equal(t, "| three |", lines[2])
	assert.Equal(t, "+-------+", lines[3])
}

func TestThemeFallback(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := ui.NewPrinter(&out, &out, "unknown", "never")
	assert.Equal(t, "classic", p.Theme.Name)
	assert.Equal(t, "☑", p.Theme.Box(true))
	assert.Equal(t, "☐", p.Theme.Box(false))
}
