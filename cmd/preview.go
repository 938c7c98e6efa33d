package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquiz/internal/difficulty"
	"github.com/abhisek/mathquiz/internal/problemgen"
	"github.com/abhisek/mathquiz/internal/session"
	"github.com/abhisek/mathquiz/internal/ui/layout"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play a quiz on plain stdin/stdout (no TUI)",
	Long: `Play a quiz line by line without the full-screen interface.

Answer with 1-4. Other commands:
  d <level>   switch level and restart
  r           restart on the current level
  q           quit

Useful for scripting, reproducing a seeded round, or terminals without
alt-screen support.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		return runPreview(cmd.InOrStdin(), cmd.OutOrStdout(), d.generator, d.tiers, session.Options{
			Tier:  d.cfg.Difficulty,
			Total: d.cfg.Questions,
		}, d.logger)
	},
}

// runPreview plays one session over line-oriented input and output. It
// returns when the round finishes, the player quits, or input closes.
func runPreview(in io.Reader, out io.Writer, gen problemgen.Generator, tiers *difficulty.Set, opts session.Options, logger *log.Logger) error {
	p := &previewPrinter{w: out, tiers: tiers}
	opts.Listener = session.WithLogging(p, logger)

	sess, err := session.New(gen, tiers, opts)
	if err != nil {
		return err
	}
	if err := sess.Advance(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for sess.Phase() != session.PhaseFinished {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "q":
			fmt.Fprintln(out, "Bye!")
			return nil
		case line == "r":
			err = sess.Reset()
		case strings.HasPrefix(line, "d "):
			err = sess.SetDifficulty(strings.TrimSpace(strings.TrimPrefix(line, "d ")))
		default:
			err = previewAnswer(sess, line)
		}

		if err != nil {
			fmt.Fprintln(out, previewError(err, tiers))
		}
	}
	return nil
}

// previewAnswer submits a 1-based choice and serves the next question.
func previewAnswer(sess *session.Session, line string) error {
	n, err := strconv.Atoi(line)
	if err != nil {
		return fmt.Errorf("%w: %q", session.ErrChoiceOutOfRange, line)
	}
	if _, err := sess.Submit(n - 1); err != nil {
		return err
	}
	return sess.Advance()
}

func previewError(err error, tiers *difficulty.Set) string {
	switch {
	case errors.Is(err, session.ErrInvalidDifficulty):
		return fmt.Sprintf("Unknown level. Choose one of: %s", strings.Join(tiers.Names(), ", "))
	case errors.Is(err, session.ErrChoiceOutOfRange):
		return "Please answer with 1, 2, 3 or 4."
	default:
		return err.Error()
	}
}

// previewPrinter renders session events as plain text.
type previewPrinter struct {
	w     io.Writer
	tiers *difficulty.Set
}

func (p *previewPrinter) QuestionReady(e session.QuestionReady) {
	fmt.Fprintf(p.w, "\n── Q%d of %d ──\n", e.Number, e.Total)
	fmt.Fprintf(p.w, "Q%d: %s\n", e.Number, e.Prompt)
	for i, c := range e.Choices {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, c)
	}
}

func (p *previewPrinter) Answered(o session.Outcome) {
	if o.Correct {
		fmt.Fprintln(p.w, "✓ Correct!")
	} else {
		fmt.Fprintf(p.w, "✗ Wrong! Correct answer: %s\n", o.CorrectText)
	}
	fmt.Fprintln(p.w, layout.RenderScore(o.Score.Correct, o.Score.Wrong))
}

func (p *previewPrinter) Finished(s session.Summary) {
	fmt.Fprintf(p.w, "\n── Quiz complete ──\n%s\n", s.Text())
}

func (p *previewPrinter) DifficultyChanged(e session.DifficultyChange) {
	name := e.Tier
	if t, err := p.tiers.Lookup(e.Tier); err == nil {
		name = t.DisplayName()
	}
	fmt.Fprintf(p.w, "\nLevel: %s\n", name)
}
