package config

import "github.com/thenoetrevino/regatta/internal/config/colors"

// DefaultColorScheme returns the default color scheme (river blue)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
