package notifications

import "github.com/thenoetrevino/tablero/internal/tui/theme"

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

func (s Severity) style() style {
	if s == Error {
		return style{
			icon:       "✕",
			title:      "Error",
			foreground: theme.ErrorFg,
			background: theme.ErrorBg,
		}
	}
	return style{
		icon:       "🔔",
		title:      "Info",
		foreground: theme.InfoFg,
		background: theme.InfoBg,
	}
}
