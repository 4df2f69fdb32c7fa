package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/content"
)

//nolint:gochecknoglobals // Cobra boilerplate
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect portfolio content",
}

//nolint:gochecknoglobals // Cobra boilerplate
var contentCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Load and validate a content file",
	Long: `Loads a YAML content file, validates it and prints a summary. Without
a file the compiled-in content is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContentCheck,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	contentCmd.AddCommand(contentCheckCmd)
	rootCmd.AddCommand(contentCmd)
}

func runContentCheck(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	c, err := content.Load(path)
	if err != nil {
		return err
	}
	if path == "" {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	skills := 0
	for _, cat := range c.Skills {
		skills += len(cat.Skills)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "profile:      %s\n", c.Profile.Name)
	fmt.Fprintf(out, "statistics:   %d\n", len(c.Stats))
	fmt.Fprintf(out, "skills:       %d in %d categories\n", skills, len(c.Skills))
	fmt.Fprintf(out, "projects:     %d\n", len(c.Projects))
	fmt.Fprintf(out, "certificates: %d\n", len(c.Certificates))
	return nil
}
