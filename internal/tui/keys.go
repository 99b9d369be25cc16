package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/regatta/internal/config"
	"github.com/thenoetrevino/regatta/internal/table"
)

// KeyMap holds every binding of the table screen. Cell movement and
// header activation are handled by the table navigator; the rest here.
type KeyMap struct {
	Table table.KeyMap

	SortColumn  key.Binding
	ClearSort   key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	ScrollStart key.Binding
	ScrollEnd   key.Binding
	Reload      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// withAlternate binds the fixed keys plus the configured one, if any.
func withAlternate(configured string, fixed ...string) key.BindingOpt {
	if configured != "" {
		fixed = append(fixed, configured)
	}
	return key.WithKeys(fixed...)
}

// NewKeyMap layers the configured key mappings on top of the arrow keys.
func NewKeyMap(km config.KeyMappings) KeyMap {
	nav := table.DefaultKeyMap()
	nav.Left = key.NewBinding(withAlternate(km.CellLeft, "left"), key.WithHelp("←/"+km.CellLeft, "prev cell"))
	nav.Right = key.NewBinding(withAlternate(km.CellRight, "right"), key.WithHelp("→/"+km.CellRight, "next cell"))
	nav.Up = key.NewBinding(withAlternate(km.CellUp, "up"), key.WithHelp("↑/"+km.CellUp, "row above"))
	nav.Down = key.NewBinding(withAlternate(km.CellDown, "down"), key.WithHelp("↓/"+km.CellDown, "row below"))

	return KeyMap{
		Table: nav,

		SortColumn:  key.NewBinding(withAlternate(km.SortColumn), key.WithHelp(km.SortColumn, "sort column")),
		ClearSort:   key.NewBinding(withAlternate(km.ClearSort), key.WithHelp(km.ClearSort, "clear sort")),
		ScrollLeft:  key.NewBinding(withAlternate(km.ScrollLeft, "shift+left"), key.WithHelp(km.ScrollLeft, "scroll left")),
		ScrollRight: key.NewBinding(withAlternate(km.ScrollRight, "shift+right"), key.WithHelp(km.ScrollRight, "scroll right")),
		ScrollStart: key.NewBinding(withAlternate(km.ScrollStart, "home"), key.WithHelp("home/"+km.ScrollStart, "first column")),
		ScrollEnd:   key.NewBinding(withAlternate(km.ScrollEnd, "end"), key.WithHelp("end/"+km.ScrollEnd, "last column")),
		Reload:      key.NewBinding(withAlternate(km.Reload), key.WithHelp(km.Reload, "reload")),
		Help:        key.NewBinding(withAlternate(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:        key.NewBinding(withAlternate(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Table.Activate, k.SortColumn, k.ScrollLeft, k.ScrollRight, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Table.Left, k.Table.Right, k.Table.Up, k.Table.Down},
		{k.Table.Activate, k.SortColumn, k.ClearSort},
		{k.ScrollLeft, k.ScrollRight, k.ScrollStart, k.ScrollEnd},
		{k.Reload, k.Help, k.Quit},
	}
}
