// Package achievements provides the achievement catalog command.
package achievements

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tracker "github.com/KaminaDuck/hd2-tracker"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/globals"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/output"
)

// AppContext defines the interface that the achievements command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Tracker() (tracker.Tracker, error)
}

// NewCommand creates the achievements command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "achievements",
		GroupID: "management",
		Short:   "List the achievement catalog",
		Long: `Achievements lists the catalog of milestones that progress is
measured against. The built-in catalog can be replaced with a custom
YAML file via the achievements_file config setting.`,
		Aliases: []string{"achievement"},
		Args:    cobra.NoArgs,
		Example: `  hd2tracker achievements              # Catalog as a table
  hd2tracker achievements -o yaml      # Catalog as YAML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			tr, err := app.Tracker()
			if err != nil {
				return err
			}

			list := tr.Achievements().List()

			if !flags.Quiet {
				fmt.Fprintf(os.Stderr, "Found %d achievements\n", len(list))
			}

			return output.FormatAchievements(list, flags)
		},
	}
}
