package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/incometax/internal/calculation"
	"github.com/rpgo/incometax/internal/config"
	"github.com/rpgo/incometax/internal/logging"
)

// app carries the state shared by every subcommand once the root pre-run has loaded it
type app struct {
	configFile string
	logLevel   string
	logFormat  string
	debug      bool

	cfg    *config.AppConfig
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "itax",
		Short: "Slab-based income tax calculator",
		Long: `itax computes income tax under the old and new regimes.

It normalizes deductions, applies rebates, integrates the slab table,
adds the health and education cess and splits the total into the
quarterly advance-tax schedule.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "application config file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json or console")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "dump parsed requests to stderr")

	root.AddCommand(
		newCalculateCmd(a),
		newCompareCmd(a),
		newSlabsCmd(a),
		newBreakEvenCmd(a),
		newRulesCmd(),
		newServeCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	cfg, err := config.LoadAppConfig(a.configFile)
	if err != nil {
		return err
	}
	if a.logFormat != "" {
		cfg.Logging.Format = strings.ToLower(a.logFormat)
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging, a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// newEngine binds an engine to the rules file named by the flag, falling
// back to the configured file and then to the built-in table.
func (a *app) newEngine(rulesFile string) (*calculation.CalculationEngine, error) {
	if rulesFile == "" {
		rulesFile = a.cfg.Rules.File
	}
	rules, err := config.NewInputParser().LoadRulesOrDefault(rulesFile)
	if err != nil {
		return nil, err
	}
	engine, err := calculation.NewCalculationEngineWithRules(rules)
	if err != nil {
		return nil, err
	}
	engine.SetLogger(logging.NewZapAdapter(a.logger))
	a.logger.Debug("engine ready", zap.String("rules_year", rules.Year), zap.String("rules_file", rulesFile))
	return engine, nil
}

func (a *app) dump(cmd *cobra.Command, label string, v any) {
	if !a.debug {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s:\n%s", label, spew.Sdump(v))
}
