package notifications

import (
	"github.com/thenoetrevino/regatta/internal/config/colors"
	"github.com/thenoetrevino/regatta/internal/tui/state"
)

type style struct {
	icon       string
	foreground string
	background string
}

// levelStyle picks the icon and colors of a notification level.
func levelStyle(scheme colors.ColorScheme, level state.NotificationLevel) style {
	switch level {
	case state.LevelWarning:
		return style{icon: "⚠", foreground: scheme.WarningFg, background: scheme.WarningBg}
	case state.LevelError:
		return style{icon: "✖", foreground: scheme.ErrorFg, background: scheme.ErrorBg}
	default:
		return style{icon: "🔔", foreground: scheme.InfoFg, background: scheme.InfoBg}
	}
}
