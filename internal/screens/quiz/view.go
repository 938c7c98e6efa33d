package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/session"
	"github.com/abhisek/mathquiz/internal/ui/components"
	"github.com/abhisek/mathquiz/internal/ui/layout"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// statusLine renders "Q3 of 10   Score: 2✓ / 0✗   Level: Easy".
func (s *QuizScreen) statusLine() string {
	total := s.sess.Total()
	n := 1
	if s.question != nil {
		n = s.question.Number
	}
	if s.sess.Phase() == session.PhaseFinished {
		n = total
	}
	sc := s.sess.Score()
	return fmt.Sprintf("Q%d of %d   %s   Level: %s",
		min(n, total), total, layout.RenderScore(sc.Correct, sc.Wrong), s.sess.Tier().DisplayName())
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	iw := components.CardInnerWidth(cw)

	var b strings.Builder

	b.WriteString(theme.Subtitle.Width(iw).Render(s.statusLine()))
	b.WriteString("\n")
	answered := s.sess.Score().Answered()
	bar := components.NewProgressBar("", float64(answered)/float64(s.sess.Total()), false, iw)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	switch {
	case s.finished != nil:
		b.WriteString(theme.Title.Width(iw).Render("Quiz complete!"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Width(iw).Align(lipgloss.Center).Render(s.finished.Text()))
	case s.question != nil:
		b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("Q%d: %s", s.question.Number, s.question.Prompt)))
		b.WriteString("\n\n")
		b.WriteString(s.choices.View())
		b.WriteString("\n\n")
		b.WriteString(s.feedback(iw))
	default:
		b.WriteString(theme.Hint.Render("Get ready..."))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(s.errMsg))
	}

	card := components.Card(b.String(), cw)
	if layout.IsCompact(width, height+6) {
		return components.Center(card, width, height)
	}

	mascot := lipgloss.PlaceHorizontal(cw, lipgloss.Center, components.RenderMascot(s.mood))
	return components.Center(card+"\n\n"+mascot, width, height)
}

// feedback renders the answer verdict, or a prompt while the question is
// still open.
func (s *QuizScreen) feedback(width int) string {
	if s.outcome == nil {
		return theme.Hint.Width(width).Render("Pick 1-4, or use the arrows and Enter")
	}
	if s.outcome.Correct {
		return theme.Correct.Render("Correct!")
	}
	return theme.Incorrect.Render("Wrong! Correct answer: " + s.outcome.CorrectText)
}
