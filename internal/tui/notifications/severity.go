package notifications

import "github.com/thenoetrevino/jot/internal/tui/theme"

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

func styleFor(level Level) style {
	switch level {
	case LevelWarning:
		return style{icon: "⚠", title: "Warning", foreground: theme.WarningFg, background: theme.WarningBg}
	case LevelError:
		return style{icon: "✕", title: "Error", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return style{icon: "🔔", title: "Info", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}
