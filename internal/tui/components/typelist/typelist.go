package typelist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/donikhodjaev/misbaha/internal/models"
)

type SelectMsg struct {
	ID string
}

type AddMsg struct{}

type DeleteMsg struct {
	ID string
}

type Item struct {
	Type    models.ZikrType
	Session int
	Today   int
	Active  bool
}

func (i Item) Title() string {
	title := i.Type.Name
	if i.Active {
		title = "● " + title
	}
	return title
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | session %d | today %d", i.Type.Arabic, i.Session, i.Today)
	if i.Type.Custom {
		desc += " | custom"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Type.Name }

type KeyMap struct {
	Select key.Binding
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select, keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select, keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func (m *Model) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Selected() (Item, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Select):
			if item, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SelectMsg{ID: item.Type.ID} }
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.Selected(); ok && item.Type.Custom {
				return m, func() tea.Msg { return DeleteMsg{ID: item.Type.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
