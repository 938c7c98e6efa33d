package home

import (
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/difficulty"
	"github.com/abhisek/mathquiz/internal/problemgen"
	"github.com/abhisek/mathquiz/internal/router"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/screens/quiz"
	"github.com/abhisek/mathquiz/internal/ui/components"
	"github.com/abhisek/mathquiz/internal/ui/layout"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// Options configures the quizzes started from the home screen.
type Options struct {
	// Tier is the level the cursor starts on.
	Tier string

	// Total is the number of questions per round.
	Total int

	// Logger is handed to every quiz. Nil disables logging.
	Logger *log.Logger
}

// HomeScreen lets the player pick a level and start a quiz.
type HomeScreen struct {
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen with one menu entry per tier.
func New(gen problemgen.Generator, tiers *difficulty.Set, opts Options) *HomeScreen {
	h := &HomeScreen{}

	items := make([]components.MenuItem, 0, tiers.Len()+1)
	selected := 0
	for i, t := range tiers.All() {
		if tiers.Has(opts.Tier) && t.Name == strings.ToLower(strings.TrimSpace(opts.Tier)) {
			selected = i
		}
		name := t.Name
		items = append(items, components.MenuItem{
			Label: "PLAY " + strings.ToUpper(name),
			Action: func() tea.Cmd {
				q, err := quiz.New(gen, tiers, quiz.Options{Tier: name, Total: opts.Total, Logger: opts.Logger})
				if err != nil {
					h.errMsg = err.Error()
					return nil
				}
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: q}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "EXIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	h.menu = components.NewMenu(items)
	h.menu.Selected = selected
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+6)
	cw := components.ContentWidth(width)

	sections := []string{renderBanner(cw, compact)}
	if !compact {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			components.RenderMascot(components.MascotIdle)))
	}
	sections = append(sections,
		theme.Subtitle.Width(cw).Render("Pick a level to start"),
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, h.menu.View()),
	)
	if h.errMsg != "" {
		sections = append(sections, theme.Incorrect.Width(cw).Render(h.errMsg))
	}

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}
