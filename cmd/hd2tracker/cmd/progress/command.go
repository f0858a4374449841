// Package progress provides the achievement progress command.
package progress

import (
	"github.com/spf13/cobra"

	tracker "github.com/KaminaDuck/hd2-tracker"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/globals"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/output"
)

// AppContext defines the interface that the progress command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Tracker() (tracker.Tracker, error)
}

// NewCommand creates the progress command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "progress <player>",
		GroupID: "core",
		Short:   "Show a player's achievement progress",
		Long: `Progress reports how far a player's stored record has come toward
each achievement in the catalog, including thresholds already passed.`,
		Example: `  hd2tracker progress Helldiver1             # Progress table
  hd2tracker progress Helldiver1 -o json     # Structured output`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			tr, err := app.Tracker()
			if err != nil {
				return err
			}

			progress, err := tr.Progress(args[0])
			if err != nil {
				// Suppress usage display for not found errors
				cmd.SilenceUsage = true
				return err
			}

			return output.FormatProgress(progress, flags)
		},
	}
}
