package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Table
		HeaderFg: "#000000",
		HeaderBg: "#D0D0D0",
		SortedFg: "#000000",
		Border:   "#585858",
		FocusFg:  "#000000",
		FocusBg:  "#FFFFFF",
		StripeBg: "#1C1C1C",
		StickyBg: "#121212",
		Paid:     "#FFFFFF",
		Unpaid:   "#808080",
		StatusFg: "#FFFFFF",
		StatusBg: "#3A3A3A",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}
