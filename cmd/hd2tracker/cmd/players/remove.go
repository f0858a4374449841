package players

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaminaDuck/hd2-tracker/internal/cmd/globals"
)

// newRemoveCommand creates the players remove subcommand.
func newRemoveCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <player>",
		Short:   "Delete a player's record",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}

			tr, err := app.Tracker()
			if err != nil {
				return err
			}

			if err := tr.Roster().DeletePlayer(args[0]); err != nil {
				cmd.SilenceUsage = true
				return err
			}
			if err := tr.Save(); err != nil {
				return err
			}

			if !flags.Quiet {
				fmt.Fprintf(os.Stderr, "Removed %s from the roster\n", args[0])
			}
			return nil
		},
	}
}
