package config

// KeyMappings defines all configurable key bindings.
// Arrow keys, enter, space, home and end are always bound; these are the
// additional keys layered on top.
type KeyMappings struct {
	// Cell navigation
	CellLeft  string `yaml:"cell_left"`
	CellRight string `yaml:"cell_right"`
	CellUp    string `yaml:"cell_up"`
	CellDown  string `yaml:"cell_down"`

	// Sorting
	SortColumn string `yaml:"sort_column"`
	ClearSort  string `yaml:"clear_sort"`

	// Horizontal scrolling
	ScrollLeft  string `yaml:"scroll_left"`
	ScrollRight string `yaml:"scroll_right"`
	ScrollStart string `yaml:"scroll_start"`
	ScrollEnd   string `yaml:"scroll_end"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		CellLeft:  "h",
		CellRight: "l",
		CellUp:    "k",
		CellDown:  "j",

		SortColumn: "s",
		ClearSort:  "c",

		ScrollLeft:  "[",
		ScrollRight: "]",
		ScrollStart: "0",
		ScrollEnd:   "$",

		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	pairs := []struct {
		value    *string
		fallback string
	}{
		{&k.CellLeft, defaults.CellLeft},
		{&k.CellRight, defaults.CellRight},
		{&k.CellUp, defaults.CellUp},
		{&k.CellDown, defaults.CellDown},
		{&k.SortColumn, defaults.SortColumn},
		{&k.ClearSort, defaults.ClearSort},
		{&k.ScrollLeft, defaults.ScrollLeft},
		{&k.ScrollRight, defaults.ScrollRight},
		{&k.ScrollStart, defaults.ScrollStart},
		{&k.ScrollEnd, defaults.ScrollEnd},
		{&k.Reload, defaults.Reload},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	}
	for _, p := range pairs {
		if *p.value == "" {
			*p.value = p.fallback
		}
	}
}
