package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// MascotMood selects which mascot art to display.
type MascotMood int

const (
	MascotIdle        MascotMood = iota // Default purple
	MascotCelebrating                   // Gold, star eyes after a correct answer
	MascotConsoling                     // Orange, sad mouth after a wrong answer
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ±×÷ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ±×÷ │
└─╥═╥─┘
  ╚═╝`

const mascotConsoling = `┌─────┐
│ ◉ ◉ │
│  ︵  │
│ ±×÷ │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given mood.
func RenderMascot(mood MascotMood) string {
	art := mascotIdle
	fg := theme.Primary

	switch mood {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Gold
	case MascotConsoling:
		art = mascotConsoling
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
