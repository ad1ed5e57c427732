package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/incometax/internal/output"
)

func newBreakEvenCmd(a *app) *cobra.Command {
	var (
		income, rulesFile, format, save string
		salaried                        bool
	)
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Find the old-regime deduction that matches the new regime's tax",
		Long: `breakeven searches for the smallest deduction (on top of the standard
deduction) at which the old regime costs no more than the new regime.
Claims above this figure make the old regime the cheaper choice.`,
		Example: "  itax breakeven --income 900000 --salaried",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("income", income)
			if err != nil {
				return err
			}
			engine, err := a.newEngine(rulesFile)
			if err != nil {
				return err
			}
			res, err := engine.CalculateBreakEvenDeduction(amount, salaried)
			if err != nil {
				return err
			}
			a.logger.Info("break-even found",
				zap.String("op", "breakeven"),
				zap.String("deduction", res.BreakEvenDeduction.String()),
				zap.Int("iterations", res.Iterations),
			)

			return writeReport(cmd, output.BreakEvenReport(res), format, save)
		},
	}
	cmd.Flags().StringVar(&income, "income", "", "gross annual income")
	cmd.Flags().BoolVar(&salaried, "salaried", false, "apply the standard deduction for salaried taxpayers")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "tax rules file (defaults to the built-in FY 2023-24 table)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, json, yaml, csv")
	cmd.Flags().StringVar(&save, "save", "", "also write the report to this file")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}
