package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// MultiChoice renders a numbered list of answer choices with a cursor.
// Once revealed, the chosen and correct choices are highlighted.
type MultiChoice struct {
	Options  []string
	Selected int
	Revealed bool
	Chosen   int
	Correct  int
}

// NewMultiChoice creates a multiple-choice list with the cursor on the
// first option.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// Up moves the cursor to the previous option.
func (m *MultiChoice) Up() {
	if !m.Revealed && m.Selected > 0 {
		m.Selected--
	}
}

// Down moves the cursor to the next option.
func (m *MultiChoice) Down() {
	if !m.Revealed && m.Selected < len(m.Options)-1 {
		m.Selected++
	}
}

// Reveal freezes the list and marks the chosen and correct options.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.Revealed = true
	m.Chosen = chosen
	m.Correct = correct
	m.Selected = chosen
}

// View renders the options, one per line.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Revealed && i == m.Correct:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed && i == m.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed:
			style = theme.Dimmed
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		if i < len(m.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
