// Package todolist holds the ordered todo items for one invocation and
// the operations the CLI applies to them.
//
// Items are addressed by 1-based position. Positions are dense: removing
// an item shifts every later item down by one. Each item also gets an ID
// when it enters the list; IDs stay fixed while positions move and are
// never persisted.
package todolist

import (
	"context"
	"errors"
	"fmt"

	"github.com/idilsaglam/mdtodo/internal/codec"
	"github.com/idilsaglam/mdtodo/internal/model"
	"github.com/idilsaglam/mdtodo/internal/store/mdstore"
)

// ErrInvalidNumber is returned when an item number is outside 1..Len.
var ErrInvalidNumber = errors.New("invalid item number")

// List is an ordered sequence of items.
type List struct {
	items  []model.Item
	nextID uint64
	dirty  bool
}

// New returns a list holding copies of items, each given a fresh ID.
func New(items []model.Item) *List {
	l := &List{items: make([]model.Item, 0, len(items))}
	for _, it := range items {
		l.push(it)
	}
	return l
}

// Load reads the list from the Markdown file at path.
func Load(ctx context.Context, path string) (*List, error) {
	items, err := mdstore.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return New(items), nil
}

// Save writes the list to the Markdown file at path.
func (l *List) Save(ctx context.Context, path string) error {
	if err := mdstore.Save(ctx, path, l.items); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	l.dirty = false
	return nil
}

func (l *List) push(it model.Item) uint64 {
	l.nextID++
	it.ID = l.nextID
	l.items = append(l.items, it)
	return it.ID
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// Dirty reports whether the list changed since it was loaded or saved.
func (l *List) Dirty() bool { return l.dirty }

// Items returns a copy of the items in order.
func (l *List) Items() []model.Item {
	out := make([]model.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Item returns the item at 1-based position n.
func (l *List) Item(n int) (model.Item, error) {
	if !l.valid(n) {
		return model.Item{}, fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}
	return l.items[n-1], nil
}

// IndexOf returns the current 1-based position of the item with id,
// or 0 if no such item exists.
func (l *List) IndexOf(id uint64) int {
	for i, it := range l.items {
		if it.ID == id {
			return i + 1
		}
	}
	return 0
}

// Lines renders each item as "n: - [ ] text".
func (l *List) Lines() []string {
	out := make([]string, 0, len(l.items))
	for i, it := range l.items {
		out = append(out, fmt.Sprintf("%d: %s", i+1, codec.EncodeLine(it)))
	}
	return out
}

// Stats counts done and pending items.
func (l *List) Stats() (done, pending int) {
	for _, it := range l.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Add appends a not-done item and returns its ID.
func (l *List) Add(text string) uint64 {
	l.dirty = true
	return l.push(model.Item{Text: text})
}

// Insert places a copy of it at 1-based position n, clamped to 1..Len+1.
// An item without an ID gets a fresh one. It returns the ID used.
func (l *List) Insert(n int, it model.Item) uint64 {
	if n < 1 {
		n = 1
	}
	if n > len(l.items)+1 {
		n = len(l.items) + 1
	}
	if it.ID == 0 {
		l.nextID++
		it.ID = l.nextID
	} else if it.ID > l.nextID {
		l.nextID = it.ID
	}
	l.items = append(l.items, model.Item{})
	copy(l.items[n:], l.items[n-1:])
	l.items[n-1] = it
	l.dirty = true
	return it.ID
}

// MarkDone sets the done flag of item n. Marking a done item is a no-op.
func (l *List) MarkDone(n int) error {
	if !l.valid(n) {
		return fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}
	if !l.items[n-1].Done {
		l.items[n-1].Done = true
		l.dirty = true
	}
	return nil
}

// Toggle flips the done flag of item n.
func (l *List) Toggle(n int) error {
	if !l.valid(n) {
		return fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}
	l.items[n-1].Done = !l.items[n-1].Done
	l.dirty = true
	return nil
}

// Edit replaces the text of item n.
func (l *List) Edit(n int, text string) error {
	if !l.valid(n) {
		return fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}
	if l.items[n-1].Text != text {
		l.items[n-1].Text = text
		l.dirty = true
	}
	return nil
}

// Remove deletes item n and returns it.
func (l *List) Remove(n int) (model.Item, error) {
	if !l.valid(n) {
		return model.Item{}, fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}
	it := l.items[n-1]
	l.items = append(l.items[:n-1], l.items[n:]...)
	l.dirty = true
	return it, nil
}

// RemoveCompleted deletes every done item, keeping the order of the rest.
// It returns how many items were removed.
func (l *List) RemoveCompleted() int {
	kept := l.items[:0]
	for _, it := range l.items {
		if !it.Done {
			kept = append(kept, it)
		}
	}
	removed := len(l.items) - len(kept)
	clear(l.items[len(kept):])
	l.items = kept
	if removed > 0 {
		l.dirty = true
	}
	return removed
}

// RemoveAll empties the list and returns how many items it held.
func (l *List) RemoveAll() int {
	n := len(l.items)
	l.items = l.items[:0]
	l.dirty = true
	return n
}

func (l *List) valid(n int) bool {
	return n >= 1 && n <= len(l.items)
}
