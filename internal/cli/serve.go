package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			app := api.NewApp(cfg, logger)
			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info("listening", "addr", addr)
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
	return cmd
}
