// Package ui provides an interactive terminal browser over the diary.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/pup/pkg/diary"
	"tableflip.dev/pup/pkg/entry"
	"tableflip.dev/pup/pkg/printers"
)

type item struct{ e *entry.Entry }

func (it item) Title() string {
	if it.e.Focus != "" {
		return fmt.Sprintf("%s · %s", it.e.FormattedDate(), it.e.Focus)
	}
	return it.e.FormattedDate()
}
func (it item) Description() string { return printers.Sanitize(it.e.Text) }
func (it item) FilterValue() string { return it.e.Text }

type keyMap struct {
	Delete key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 2)

// Model is the bubbletea model for the diary browser.
type Model struct {
	store  *diary.Store
	list   list.Model
	status string
}

// New builds the browser over the given store.
func New(store *diary.Store) Model {
	d := list.NewDefaultDelegate()
	l := list.New(nil, d, 80, 24)
	l.Title = "Training Diary"
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}

	m := Model{store: store, list: l}
	m.refresh()
	return m
}

// refresh rebuilds the whole list from the store; the view is always a
// full re-projection of the current collection.
func (m *Model) refresh() {
	entries := m.store.Entries()
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, item{e: e})
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-1)
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Delete):
			if it, ok := m.list.SelectedItem().(item); ok {
				if err := m.store.Remove(it.e.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = "removed " + it.e.FormattedDate()
				}
				m.refresh()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View() + "\n" + statusStyle.Render(m.status)
}
