package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquiz/internal/difficulty"
	"github.com/abhisek/mathquiz/internal/problemgen"
	"github.com/abhisek/mathquiz/internal/router"
	"github.com/abhisek/mathquiz/internal/screens/quiz"
)

func testOptions() Options {
	return Options{
		Generator: problemgen.New(problemgen.NewSeededSource(7), problemgen.DefaultConfig()),
		Tiers:     difficulty.Defaults(),
		Tier:      "medium",
		Total:     3,
	}
}

func TestNewAppModel_RequiresDependencies(t *testing.T) {
	if _, err := newAppModel(Options{}); err == nil {
		t.Error("expected error without generator and tiers")
	}
}

func TestNewAppModel_StartsOnHome(t *testing.T) {
	m, err := newAppModel(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if m.router.Depth() != 1 || m.router.Active().Title() != "Home" {
		t.Errorf("expected home at depth 1, got %q at %d", m.router.Active().Title(), m.router.Depth())
	}
}

func TestNewAppModel_SkipHome(t *testing.T) {
	opts := testOptions()
	opts.SkipHome = true
	m, err := newAppModel(opts)
	if err != nil {
		t.Fatal(err)
	}
	q, ok := m.router.Active().(*quiz.QuizScreen)
	if !ok {
		t.Fatalf("expected quiz on top, got %T", m.router.Active())
	}
	if q.Session().Active() == nil {
		t.Error("expected the first question to be served on push")
	}
	if q.Session().Tier().Name != "medium" {
		t.Errorf("tier = %s, want medium", q.Session().Tier().Name)
	}
}

func TestNewAppModel_SkipHomeUnknownTier(t *testing.T) {
	opts := testOptions()
	opts.SkipHome = true
	opts.Tier = "expert"
	if _, err := newAppModel(opts); err == nil {
		t.Error("expected error for unknown tier")
	}
}

func TestUpdate_EscPopsToHome(t *testing.T) {
	opts := testOptions()
	opts.SkipHome = true
	m, _ := newAppModel(opts)

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	m = updated.(AppModel)
	updated, _ = m.Update(cmd())
	m = updated.(AppModel)

	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}

	// Esc on home is a no-op.
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("expected no command for Esc on home")
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m, _ := newAppModel(testOptions())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestView_ShowsQuizStatusInHeader(t *testing.T) {
	opts := testOptions()
	opts.SkipHome = true
	m, _ := newAppModel(opts)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(AppModel)

	content := m.render()
	for _, want := range []string{"Mathquiz", "Level: Medium", "Score: 0✓ / 0✗", "Q1 of 3"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	m, _ := newAppModel(testOptions())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = updated.(AppModel)

	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}

func TestUpdate_PushScreen(t *testing.T) {
	m, _ := newAppModel(testOptions())
	q, err := quiz.New(testOptions().Generator, difficulty.Defaults(), quiz.Options{Total: 2})
	if err != nil {
		t.Fatal(err)
	}
	updated, _ := m.Update(router.PushScreenMsg{Screen: q})
	m = updated.(AppModel)
	if m.router.Active() != q {
		t.Error("expected pushed quiz to be active")
	}
}

func TestView_EmptyBeforeWindowSize(t *testing.T) {
	m, _ := newAppModel(testOptions())
	if m.render() != "" {
		t.Error("expected empty content before the first WindowSizeMsg")
	}
	if !m.View().AltScreen {
		t.Error("expected the alt screen")
	}
}
