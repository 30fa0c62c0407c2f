package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Select key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Sort   key.Binding
	Search key.Binding
	Import key.Binding
	Export key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func newListKeyMap() listKeyMap {
	return listKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Open")),
		Select: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "Select")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "New")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "Delete selected")),
		Sort:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "Sort")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "Search")),
		Import: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "Import")),
		Export: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "Export")),
		Clear:  key.NewBinding(key.WithKeys("esc")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
	}
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Select, k.New, k.Edit, k.Delete, k.Sort, k.Search, k.Import, k.Export, k.Quit}
}

type detailKeyMap struct {
	Edit key.Binding
	Back key.Binding
	Quit key.Binding
}

func newDetailKeyMap() detailKeyMap {
	return detailKeyMap{
		Edit: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit")),
		Back: key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "Back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
	}
}

func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Back, k.Quit}
}

// helpLine renders bindings as "[key] Desc" pairs.
func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
