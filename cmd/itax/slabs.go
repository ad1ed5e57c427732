package main

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/incometax/internal/domain"
	"github.com/rpgo/incometax/internal/output"
)

func newSlabsCmd(a *app) *cobra.Command {
	var rulesFile, format string
	cmd := &cobra.Command{
		Use:       "slabs <old|new>",
		Short:     "Print the slab table of a regime",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"old", "new"},
		RunE: func(cmd *cobra.Command, args []string) error {
			regime, err := domain.ParseRegime(args[0])
			if err != nil {
				return err
			}
			engine, err := a.newEngine(rulesFile)
			if err != nil {
				return err
			}
			view, err := output.NewSlabTableView(engine.Rules(), regime)
			if err != nil {
				return err
			}
			return output.GenerateReport(cmd.OutOrStdout(), output.SlabReport(view), format)
		},
	}
	cmd.Flags().StringVar(&rulesFile, "rules", "", "tax rules file (defaults to the built-in FY 2023-24 table)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json, yaml, csv)")
	return cmd
}
