package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/ui/theme"
)

const bannerArt = `╔╦╗╔═╗╔╦╗╦ ╦  ╔═╗ ╦ ╦╦╔═╗
║║║╠═╣ ║ ╠═╣  ║═╬╗║ ║║╔═╝
╩ ╩╩ ╩ ╩ ╩ ╩  ╚═╝╚╚═╝╩╚═╝`

const bannerCompact = "M A T H · Q U I Z"

// renderBanner returns the title block, or a one-line fallback when space
// is short.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	art := bannerArt
	if compact {
		art = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}
