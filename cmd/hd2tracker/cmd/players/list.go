package players

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaminaDuck/hd2-tracker/internal/cmd/globals"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/output"
)

// newListCommand creates the players list subcommand.
func newListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List players with their headline statistics",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  hd2tracker players list             # Headline statistics
  hd2tracker players list -o wide     # Include accuracy and sample counts
  hd2tracker players list -o json     # Full records as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			tr, err := app.Tracker()
			if err != nil {
				return err
			}

			records := tr.Roster().Players()

			if !flags.Quiet {
				fmt.Fprintf(os.Stderr, "Found %d players\n", len(records))
			}

			return output.FormatPlayers(records, flags)
		},
	}
}
