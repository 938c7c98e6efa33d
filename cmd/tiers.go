package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquiz/internal/difficulty"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the difficulty levels and their number ranges",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		tiers, err := cfg.Tiers()
		if err != nil {
			return fmt.Errorf("load tiers: %w", err)
		}
		printTiers(cmd.OutOrStdout(), tiers, cfg.Difficulty)
		return nil
	},
}

// printTiers writes one row per tier. The row for current is starred.
func printTiers(w io.Writer, tiers *difficulty.Set, current string) {
	fmt.Fprintf(w, "  %-10s  %-9s  %-9s  %-9s  %-9s  %s\n",
		"Level", "+", "-", "×", "÷", "Divisors")
	fmt.Fprintln(w, strings.Repeat("─", 70))

	for _, t := range tiers.All() {
		mark := " "
		if strings.EqualFold(t.Name, strings.TrimSpace(current)) {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-10s  %-9s  %-9s  %-9s  %-9s  %s\n",
			mark, t.Name,
			rangeText(t.Addition), rangeText(t.Subtraction),
			rangeText(t.Multiplication), rangeText(t.Division),
			joinInts(t.Division.Divisors))
	}
}

func rangeText(r difficulty.OperatorRange) string {
	return fmt.Sprintf("%d–%d", r.Min, r.Max)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ",")
}
