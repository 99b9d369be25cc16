package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the focused cell and titles)
	Accent string `yaml:"accent"`

	// Table colors
	HeaderFg string `yaml:"header_fg"`
	HeaderBg string `yaml:"header_bg"`
	SortedFg string `yaml:"sorted_fg"` // header of the sorted column
	Border   string `yaml:"border"`
	FocusFg  string `yaml:"focus_fg"`
	FocusBg  string `yaml:"focus_bg"`
	StripeBg string `yaml:"stripe_bg"` // every other data row
	StickyBg string `yaml:"sticky_bg"` // pinned columns
	Paid     string `yaml:"paid"`
	Unpaid   string `yaml:"unpaid"`
	StatusFg string `yaml:"status_fg"`
	StatusBg string `yaml:"status_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot so defaults and merges stay in sync
// with the struct.
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.HeaderFg, &c.HeaderBg, &c.SortedFg, &c.Border,
		&c.FocusFg, &c.FocusBg, &c.StripeBg, &c.StickyBg,
		&c.Paid, &c.Unpaid, &c.StatusFg, &c.StatusBg,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset).fields()
	for i, f := range c.fields() {
		if *f == "" {
			*f = *preset[i]
		}
	}
	if c.Preset == "" {
		c.Preset = "default"
	}
}

// MergeFrom overrides colors with every non-empty value of other.
// A preset in other replaces the whole scheme before the overrides apply.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	theirs := other.fields()
	for i, f := range c.fields() {
		if *theirs[i] != "" {
			*f = *theirs[i]
		}
	}
}
