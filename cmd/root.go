// Package cmd holds the folio command line.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Serve an animated single-page portfolio",
	Long: `folio serves a personal portfolio page whose animations (typed
headline, blinking cursor, scroll reveals, count-up statistics and the contact
form) run on the server, one event loop per open page, and stream to the
browser as DOM updates.

Configuration comes from defaults, an optional YAML file (--config or
FOLIO_CONFIG) and FOLIO_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if configFile != "" {
			return os.Setenv("FOLIO_CONFIG", configFile)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (overrides FOLIO_CONFIG)")
}

// background is the command's context, cancelled on SIGINT or SIGTERM.
func background(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}
