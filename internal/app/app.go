package app

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquiz/internal/difficulty"
	"github.com/abhisek/mathquiz/internal/problemgen"
	"github.com/abhisek/mathquiz/internal/router"
	"github.com/abhisek/mathquiz/internal/screen"
	"github.com/abhisek/mathquiz/internal/screens/home"
	"github.com/abhisek/mathquiz/internal/screens/quiz"
	"github.com/abhisek/mathquiz/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Generator problemgen.Generator
	Tiers     *difficulty.Set

	// Tier and Total configure new quizzes.
	Tier  string
	Total int

	// SkipHome starts directly in a quiz on Tier.
	SkipHome bool

	// Logger receives session events. Nil disables logging.
	Logger *log.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model with home at the bottom of the
// screen stack, and a quiz above it when SkipHome is set.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Generator == nil || opts.Tiers == nil {
		return AppModel{}, errors.New("app: generator and tiers are required")
	}

	homeScreen := home.New(opts.Generator, opts.Tiers, home.Options{
		Tier:   opts.Tier,
		Total:  opts.Total,
		Logger: opts.Logger,
	})
	r := router.New(homeScreen)

	if opts.SkipHome {
		q, err := quiz.New(opts.Generator, opts.Tiers, quiz.Options{
			Tier:   opts.Tier,
			Total:  opts.Total,
			Logger: opts.Logger,
		})
		if err != nil {
			return AppModel{}, err
		}
		r.Push(q)
	}

	return AppModel{router: r}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()

	var status layout.Status
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)

	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = kp.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
