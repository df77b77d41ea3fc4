// Package cli implements the resumectl command tree.
package cli

import (
	"github.com/spf13/cobra"

	"resume-search/internal/config"
)

// NewRootCommand builds the resumectl command tree. The container is created
// lazily so that --help works without touching the filesystem.
func NewRootCommand() *cobra.Command {
	app := &app{}

	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Index and search a folder of PDF résumés",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.container != nil {
				return nil
			}
			c, err := config.NewContainer()
			if err != nil {
				return err
			}
			app.container = c
			return nil
		},
	}

	root.AddCommand(
		newBuildCommand(app),
		newSearchCommand(app),
		newExportCommand(app),
	)
	return root
}

type app struct {
	container *config.Container
}
