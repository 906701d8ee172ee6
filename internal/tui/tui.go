// Package tui is the interactive list editor started by "todo edit".
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/mdtodo/internal/model"
	"github.com/idilsaglam/mdtodo/internal/todolist"
	"github.com/idilsaglam/mdtodo/internal/ui"
)

// listItem adapts a todo item to bubbles/list.Item.
type listItem struct {
	id   uint64
	text string
	done bool
}

func (i listItem) Title() string       { return i.text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.text }

// itemDelegate renders one item per line.
type itemDelegate struct{ theme ui.Theme }

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.theme.Muted.Render(d.theme.BoxUnchecked)
	text := it.text
	if it.done {
		box = d.theme.Success.Render(d.theme.BoxChecked)
		text = d.theme.DoneText.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

type mode int

const (
	browsing mode = iota
	adding
	editing
)

// removal remembers the last deleted item for single-level undo.
type removal struct {
	item model.Item
	pos  int
}

type keyMap struct {
	toggle, remove, add, edit, undo, quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the bubbletea model. Every change goes through the underlying
// todolist.List, so the caller can inspect Dirty and save after Run.
type Model struct {
	todos *todolist.List
	theme ui.Theme
	keys  keyMap

	list  list.Model
	input textinput.Model

	mode     mode
	editID   uint64
	inputErr string
	undo     *removal
}

// New builds the model over todos.
func New(todos *todolist.List, theme ui.Theme) Model {
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{theme: theme}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Muted
	l.Styles.PaginationStyle = theme.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	extra := func() []key.Binding { return []key.Binding{keys.toggle, keys.add, keys.edit, keys.remove, keys.undo} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0

	m := Model{
		todos: todos,
		theme: theme,
		keys:  keys,
		list:  l,
		input: ti,
	}
	m.refresh(0)
	return m
}

// Run starts the editor and blocks until the user quits.
func Run(todos *todolist.List, theme ui.Theme, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(New(todos, theme), opts...).Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size.Width, size.Height)
		return m, nil
	}
	if m.mode != browsing {
		return m.updateInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.quit):
		if keyMsg.String() == "esc" && m.list.IsFiltered() {
			break
		}
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.toggle):
		if n := m.selected(); n > 0 {
			_ = m.todos.Toggle(n)
			m.refresh(m.selectedID())
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.remove):
		if n := m.selected(); n > 0 {
			it, err := m.todos.Remove(n)
			if err == nil {
				m.undo = &removal{item: it, pos: n}
				next := uint64(0)
				if n <= m.todos.Len() {
					next = m.todos.Items()[n-1].ID
				} else if n > 1 {
					next = m.todos.Items()[n-2].ID
				}
				m.refresh(next)
			}
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.undo):
		if m.undo != nil {
			id := m.todos.Insert(m.undo.pos, m.undo.item)
			m.undo = nil
			m.refresh(id)
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.add):
		m.mode = adding
		m.inputErr = ""
		m.input.SetValue("")
		m.input.Placeholder = "New item..."
		return m, m.input.Focus()
	case key.Matches(keyMsg, m.keys.edit):
		if n := m.selected(); n > 0 {
			it, _ := m.todos.Item(n)
			m.mode = editing
			m.editID = it.ID
			m.inputErr = ""
			m.input.SetValue(it.Text)
			m.input.CursorEnd()
			m.input.Placeholder = "Edit item..."
			return m, m.input.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			text := m.input.Value()
			if strings.TrimSpace(text) == "" {
				m.inputErr = "text cannot be empty"
				return m, nil
			}
			var id uint64
			if m.mode == adding {
				id = m.todos.Insert(m.selected()+1, model.Item{Text: text})
			} else if n := m.todos.IndexOf(m.editID); n > 0 {
				_ = m.todos.Edit(n, text)
				id = m.editID
			}
			m.closeInput()
			m.refresh(id)
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = browsing
	m.editID = 0
	m.inputErr = ""
	m.input.SetValue("")
	m.input.Blur()
}

// selected returns the list position of the highlighted item, or 0.
func (m Model) selected() int {
	return m.todos.IndexOf(m.selectedID())
}

func (m Model) selectedID() uint64 {
	if it, ok := m.list.SelectedItem().(listItem); ok {
		return it.id
	}
	return 0
}

// refresh rebuilds the visible list from todos and highlights focus.
func (m *Model) refresh(focus uint64) {
	items := m.todos.Items()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{id: it.ID, text: it.Text, done: it.Done})
	}
	m.list.SetItems(li)

	done, pending := m.todos.Stats()
	m.list.Title = fmt.Sprintf("Todos   %s %d  %s %d  Total %d",
		m.theme.SymDone, done, m.theme.SymPending, pending, len(items))

	for i, vi := range m.list.VisibleItems() {
		if vi.(listItem).id == focus {
			m.list.Select(i)
			return
		}
	}
}

func (m *Model) resize(w, h int) {
	// frame border and padding
	m.list.SetSize(w-4, h-2)
}

func (m Model) View() string {
	content := m.list.View()
	if m.mode != browsing {
		title := "Add item"
		if m.mode == editing {
			title = "Edit item"
		}
		if m.inputErr != "" {
			title += " - " + m.theme.Error.Render(m.inputErr)
		}
		content += "\n" + m.theme.Frame.Render(title+"\n"+m.input.View())
	}
	return m.theme.PanelString(strings.Split(content, "\n"))
}

// Todos returns the list being edited.
func (m Model) Todos() *todolist.List { return m.todos }
