package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/incometax/internal/config"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and validate tax rules files",
	}
	cmd.AddCommand(newRulesValidateCmd(), newRulesExampleCmd())
	return cmd
}

func newRulesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a rules file for slab and schedule errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := config.NewInputParser().LoadRulesFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid rules for %s (%d regimes)\n", args[0], rules.Year, len(rules.Regimes))
			return nil
		},
	}
}

func newRulesExampleCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the built-in FY 2023-24 rules as an editable template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.MarshalRules(config.NewInputParser().CreateExampleRules())
			if err != nil {
				return err
			}
			if outFile == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Example rules written to %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write the template to this file instead of stdout")
	return cmd
}
