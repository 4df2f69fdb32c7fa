package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/store"
)

//nolint:gochecknoglobals // Cobra boilerplate
var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete visitor records older than the retention window",
	RunE:  runPrune,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, _ []string) error {
	ctx, cancel := background(cmd)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	n, err := st.PruneVisits(ctx, cfg.VisitorRetention)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d visitor records older than %s\n", n, cfg.VisitorRetention)
	return nil
}
