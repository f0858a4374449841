package players

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaminaDuck/hd2-tracker/internal/cmd/globals"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/output"
)

// newShowCommand creates the players show subcommand.
func newShowCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <player>",
		Short: "Show one player's full record",
		Args:  cobra.ExactArgs(1),
		Example: `  hd2tracker players show Helldiver1            # Grouped stat table
  hd2tracker players show Helldiver1 -o yaml    # Record as YAML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			tr, err := app.Tracker()
			if err != nil {
				return err
			}

			rec, err := tr.Roster().Player(args[0])
			if err != nil {
				// Suppress usage display for not found errors
				cmd.SilenceUsage = true
				return err
			}

			if flags.IsTable() && !flags.Quiet {
				fmt.Printf("Player: %s (updated %s)\n\n", rec.Player, rec.UpdatedAt.Format(time.DateOnly))
			}

			return output.FormatRecord(rec, flags)
		},
	}
}
