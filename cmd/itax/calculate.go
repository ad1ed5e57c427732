package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/incometax/internal/output"
)

func newCalculateCmd(a *app) *cobra.Command {
	f := &requestFlags{}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute the tax for one regime",
		Example: `  itax calculate --income 900000 --regime new --salaried
  itax calculate --income 1500000 --regime old --80c 200000 --80d 25000 -f json
  itax calculate -i request.yaml --fiscal-year 2024-25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.build(cmd, true)
			if err != nil {
				return err
			}
			a.dump(cmd, "request", req)

			engine, err := a.newEngine(f.rulesFile)
			if err != nil {
				return err
			}
			assessment, err := engine.Assess(req)
			if err != nil {
				return err
			}
			a.logger.Info("tax calculated",
				zap.String("op", "calculate"),
				zap.String("regime", assessment.Regime.String()),
				zap.String("total_tax", assessment.Result.TotalTax.String()),
			)

			return writeReport(cmd, output.AssessmentReport(assessment), f.format, f.save)
		},
	}
	f.register(cmd, true)
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	f := &requestFlags{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the old and new regimes for the same income",
		Example: `  itax compare --income 900000 --salaried
  itax compare --income 1500000 --80c 150000 --80d 25000 -f csv --save compare.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.build(cmd, false)
			if err != nil {
				return err
			}
			a.dump(cmd, "request", req)

			engine, err := a.newEngine(f.rulesFile)
			if err != nil {
				return err
			}
			comparison, err := engine.CompareRegimes(req)
			if err != nil {
				return err
			}
			a.logger.Info("regimes compared",
				zap.String("op", "compare"),
				zap.String("recommended", comparison.Recommended.String()),
				zap.String("savings", comparison.Savings.String()),
			)

			return writeReport(cmd, output.ComparisonReport(comparison), f.format, f.save)
		},
	}
	f.register(cmd, false)
	return cmd
}

// writeReport prints report to stdout and optionally saves a copy
func writeReport(cmd *cobra.Command, report *output.Report, format, save string) error {
	if err := output.GenerateReport(cmd.OutOrStdout(), report, format); err != nil {
		return err
	}
	if save == "" {
		return nil
	}
	path, err := output.SaveReport(report, format, save)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", path)
	return nil
}
