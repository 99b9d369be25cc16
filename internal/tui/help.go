package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
)

// helpMarkdown documents the bindings of km for the help overlay.
func helpMarkdown(km KeyMap) string {
	var b strings.Builder
	b.WriteString("# Keyboard shortcuts\n")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Moving around", []key.Binding{km.Table.Left, km.Table.Right, km.Table.Up, km.Table.Down}},
		{"Sorting", []key.Binding{km.Table.Activate, km.SortColumn, km.ClearSort}},
		{"Horizontal scroll", []key.Binding{km.ScrollLeft, km.ScrollRight, km.ScrollStart, km.ScrollEnd}},
		{"Other", []key.Binding{km.Reload, km.Help, km.Quit}},
	}
	for _, s := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n", s.title)
		for _, binding := range s.bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "- `%s` %s\n", h.Key, h.Desc)
		}
	}

	b.WriteString("\nActivating a header sorts ascending, again descending. ")
	b.WriteString("Shift + mouse wheel scrolls sideways.\n")
	return b.String()
}
