package cli

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/deadfoxygrandpa/phybas-graviz/server"
)

func newServeCmd(cfg *Config) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve graph layouts over HTTP",
		Long:  `serve starts an HTTP server that accepts graphs in the text interchange format, settles their layout, and serves the result as JSON or SVG.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = cfg.Server.Port
			}
			err := server.Start(cmd.Context(), server.Config{
				Port:        port,
				Logger:      loggerFromContext(cmd.Context()),
				SettleSteps: cfg.Server.SettleSteps,
			})
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (default: from config)")
	return cmd
}
