package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/router"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/session"
	"github.com/abhisek/mathquiz/internal/ui/components"
	"github.com/abhisek/mathquiz/internal/ui/layout"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// PlayAgainMsg asks the quiz screen below the summary to restart on the
// same level.
type PlayAgainMsg struct{}

// SummaryScreen displays the result of a finished quiz.
type SummaryScreen struct {
	summary session.Summary
	level   string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. level is the display name of the tier
// the quiz was played on.
func New(summary session.Summary, level string) *SummaryScreen {
	return &SummaryScreen{summary: summary, level: level}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Status() layout.Status {
	return layout.Status{Level: s.level, Correct: s.summary.Correct, Wrong: s.summary.Wrong}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "r":
			return s, func() tea.Msg {
				return router.PopScreenMsg{Then: PlayAgainMsg{}}
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)
	iw := components.CardInnerWidth(cw)

	var b strings.Builder

	b.WriteString(theme.Title.Width(iw).Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(iw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(sum.Text()))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", sum.Accuracy, true, iw)
	b.WriteString(lipgloss.PlaceHorizontal(iw, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Width(iw).Render(fmt.Sprintf("Level: %s", s.level)))
	b.WriteString("\n\n")

	mood := components.MascotIdle
	switch {
	case sum.Total > 0 && sum.Correct == sum.Total:
		mood = components.MascotCelebrating
	case sum.Correct < sum.Wrong:
		mood = components.MascotConsoling
	}
	b.WriteString(lipgloss.PlaceHorizontal(iw, lipgloss.Center, components.RenderMascot(mood)))

	return components.Center(components.Card(b.String(), cw), width, height)
}
