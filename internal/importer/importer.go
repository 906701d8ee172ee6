// Package importer pulls GitHub-style task-list items out of arbitrary
// Markdown documents.
package importer

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/idilsaglam/mdtodo/internal/model"
)

// Extract returns every task-list item in src in document order. Both
// "[x]" and "[X]" count as done. Inline markup is flattened to its text,
// soft line breaks become single spaces. Items with no text are dropped.
func Extract(src []byte) []model.Item {
	md := goldmark.New(goldmark.WithExtensions(extension.TaskList))
	doc := md.Parser().Parse(text.NewReader(src))

	var items []model.Item
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		box, ok := n.(*east.TaskCheckBox)
		if !ok {
			return ast.WalkContinue, nil
		}
		var buf bytes.Buffer
		for sib := box.NextSibling(); sib != nil; sib = sib.NextSibling() {
			writeText(&buf, sib, src)
		}
		title := strings.TrimSpace(buf.String())
		if title != "" {
			items = append(items, model.Item{Text: title, Done: box.IsChecked})
		}
		return ast.WalkSkipChildren, nil
	})
	return items
}

// ExtractFile reads path and extracts its task-list items.
func ExtractFile(path string) ([]model.Item, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Extract(src), nil
}

func writeText(buf *bytes.Buffer, n ast.Node, src []byte) {
	switch v := n.(type) {
	case *ast.Text:
		buf.Write(v.Segment.Value(src))
		if v.SoftLineBreak() || v.HardLineBreak() {
			buf.WriteByte(' ')
		}
		return
	case *ast.String:
		buf.Write(v.Value)
		return
	case *ast.AutoLink:
		buf.Write(v.Label(src))
		return
	case *ast.RawHTML:
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeText(buf, c, src)
	}
}
