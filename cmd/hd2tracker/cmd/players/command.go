// Package players provides commands for managing roster records.
package players

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	tracker "github.com/KaminaDuck/hd2-tracker"
)

// AppContext defines the interface that players commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Tracker() (tracker.Tracker, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the players command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "players [subcommand]",
		GroupID: "management",
		Short:   "Manage the clan roster",
		Long: `Players manages the stored career records that make up the roster.

Available subcommands:
  list    - All players with their headline statistics
  show    - One player's full record, grouped like the career page
  set     - Manual corrections to stored statistics
  remove  - Delete a player's record`,
		Example: `  hd2tracker players list                        # List all players
  hd2tracker players show Helldiver1             # Show one record
  hd2tracker players set Helldiver1 deaths=12    # Correct a stat by hand
  hd2tracker players remove Helldiver1           # Delete a record`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newShowCommand(app))
	cmd.AddCommand(newSetCommand(app))
	cmd.AddCommand(newRemoveCommand(app))

	return cmd
}
