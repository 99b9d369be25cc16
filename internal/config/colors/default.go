package colors

// Default returns the default color scheme (river blue)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#5F87D7",

		// Table
		HeaderFg: "#FFFFFF",
		HeaderBg: "#1C3A5F",
		SortedFg: "#FFD75F",
		Border:   "#3A3A3A",
		FocusFg:  "#FFFFFF",
		FocusBg:  "#5F87D7",
		StripeBg: "#262626",
		StickyBg: "#1C1C1C",
		Paid:     "#5FD75F",
		Unpaid:   "#FF5F5F",
		StatusFg: "#D0D0D0",
		StatusBg: "#303030",

		// Text
		Title:  "#87AFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
