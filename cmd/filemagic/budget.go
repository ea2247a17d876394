package main

import (
	"fmt"

	"github.com/gobeaver/filemagic/magic"
	"github.com/spf13/cobra"
)

var budgetKind string

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Print the header read size",
	Long: `Print how many header bytes must be read so that every built-in format can
be recognised, or, with --kind, what a single format needs.`,
	RunE: runBudget,
}

func init() {
	budgetCmd.Flags().StringVar(&budgetKind, "kind", "", "Format name as listed by 'filemagic signatures'")
}

func runBudget(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if budgetKind == "" {
		fmt.Fprintln(out, magic.RecommendedReadSize())
		return nil
	}

	kind, ok := magic.ParseKind(budgetKind)
	if !ok {
		return fmt.Errorf("unknown kind: %s", budgetKind)
	}
	rule, ok := magic.RuleFor(kind)
	if !ok {
		return fmt.Errorf("no built-in rule for %s", kind)
	}
	fmt.Fprintln(out, rule.MaxBytesRead)
	return nil
}
