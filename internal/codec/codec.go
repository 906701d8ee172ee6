// Package codec converts between a Markdown checklist and todo items.
//
// The format is line oriented:
//
//	# TODO
//
//	- [ ] Buy milk
//	- [X] Pay bills
//
// The first line is a title and is ignored when decoding; encoding always
// writes Header. Item lines carry a fixed six-rune prefix.
package codec

import (
	"strings"

	"github.com/idilsaglam/mdtodo/internal/model"
)

// Header is the title block written at the top of every encoded file.
const Header = "# TODO\n\n"

const (
	prefixLen = 6 // "- [X] "
	markPos   = 3
	doneMark  = 'X'
)

// Decode parses a Markdown checklist. The first line is skipped, blank
// lines are skipped, every other line is decoded with DecodeLine.
// Decode never fails; malformed lines degrade as described on DecodeLine.
func Decode(text string) []model.Item {
	lines := strings.Split(text, "\n")
	items := make([]model.Item, 0, len(lines))
	for i, ln := range lines {
		if i == 0 {
			continue
		}
		ln = strings.TrimSuffix(ln, "\r")
		if ln == "" {
			continue
		}
		items = append(items, DecodeLine(ln))
	}
	return items
}

// DecodeLine parses one item line. The rune at offset 3 decides the done
// flag (only an upper-case X counts) and everything after the sixth rune
// is the text, kept verbatim. Short lines yield a not-done item and/or
// empty text instead of an error.
func DecodeLine(line string) model.Item {
	var it model.Item
	n := 0
	for i, r := range line {
		if n == markPos {
			it.Done = r == doneMark
		}
		if n == prefixLen {
			it.Text = line[i:]
			break
		}
		n++
	}
	return it
}

// EncodeLine renders an item without the trailing newline.
func EncodeLine(it model.Item) string {
	return "- [" + it.Box() + "] " + it.Text
}

// Encode renders the full document: Header followed by one line per item.
func Encode(items []model.Item) string {
	var b strings.Builder
	b.WriteString(Header)
	for _, it := range items {
		b.WriteString(EncodeLine(it))
		b.WriteByte('\n')
	}
	return b.String()
}
