package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the version information displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the phybas-graviz CLI and returns an error if any command
// fails. The logger is attached to the context and accessible to all
// commands via loggerFromContext; the process exits cleanly on SIGINT and
// SIGTERM.
func Execute() error {
	var (
		verbose    bool
		configPath string
		cfg        Config
	)

	root := &cobra.Command{
		Use:          "phybas-graviz",
		Short:        "Interactive force-directed graph layout",
		Long:         `phybas-graviz lays out labeled graphs with a force-directed physics simulation and lets you pause it to drag nodes by hand.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)

			var err error
			cfg, err = loadConfig(configPath)
			return err
		},
	}

	root.SetVersionTemplate("phybas-graviz " + version + "\ncommit: " + commit + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newDemoCmd(&cfg))
	root.AddCommand(newLayoutCmd(&cfg))
	root.AddCommand(newServeCmd(&cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return root.ExecuteContext(ctx)
}
