package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rpgo/incometax/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var address, rulesFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tax engine over HTTP",
		Long: `serve starts the HTTP API:

  POST /api/v1/tax/calculate
  POST /api/v1/tax/compare
  GET  /api/v1/tax/slabs/{regime}
  GET  /health
  GET  /swagger/index.html

Settings come from --config and ITAX_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.newEngine(rulesFile)
			if err != nil {
				return err
			}
			serverCfg := a.cfg.Server
			if address != "" {
				serverCfg.Address = address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(engine, a.logger, serverCfg).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address (overrides server.address)")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "tax rules file (overrides rules.file)")
	return cmd
}
