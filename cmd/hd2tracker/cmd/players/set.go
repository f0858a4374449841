package players

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaminaDuck/hd2-tracker/internal/cmd/globals"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/output"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// newSetCommand creates the players set subcommand.
func newSetCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <player> <stat>=<value>...",
		Short: "Correct stored statistics by hand",
		Long: `Set applies manual corrections to a player's stored record, the usual
follow-up when a scan left fields marked for review. Unknown players
get a fresh zero-filled record, so a roster can also be kept entirely
by hand.

Stats are addressed by key (enemyKills, missionsWon, ...) or by their
on-screen label ("Enemy Kills").`,
		Example: `  hd2tracker players set Helldiver1 deaths=12
  hd2tracker players set Helldiver1 enemyKills=1500 missionsWon=42
  hd2tracker players set Helldiver1 "Enemy Kills=1500"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, app, args[0], args[1:])
		},
	}
}

// runSet applies stat assignments to the player's record and saves it.
func runSet(cmd *cobra.Command, app AppContext, player string, assignments []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	tr, err := app.Tracker()
	if err != nil {
		return err
	}

	rec, err := tr.Roster().Player(player)
	if err != nil {
		if !errors.IsNotFound(err) {
			return err
		}
		rec = stats.NewRecord(player, nil)
		app.Logger().Info().Str("player", player).Msg("Creating new player record")
	}

	for _, assignment := range assignments {
		key, value, err := parseAssignment(assignment)
		if err != nil {
			return err
		}
		if err := rec.Set(key, value); err != nil {
			return err
		}
	}

	if err := tr.Roster().SetPlayer(rec); err != nil {
		return err
	}
	if err := tr.Save(); err != nil {
		return err
	}

	// Re-read so the output reflects what was actually stored
	stored, err := tr.Roster().Player(player)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		fmt.Fprintf(os.Stderr, "Updated %d stat(s) for %s\n", len(assignments), player)
	}

	return output.FormatRecord(stored, flags)
}

// parseAssignment splits "stat=value" into a tracked key and its new
// value. The stat can be named by key or by on-screen label.
func parseAssignment(assignment string) (stats.Key, int, error) {
	name, raw, found := strings.Cut(assignment, "=")
	name = strings.TrimSpace(name)
	raw = strings.TrimSpace(raw)
	if !found || name == "" || raw == "" {
		return "", 0, errors.NewValidationError("assignment", assignment, "expected <stat>=<value>")
	}

	key := stats.Key(name)
	if !key.Valid() {
		resolved, ok := stats.KeyForLabel(name)
		if !ok {
			return "", 0, errors.NewValidationError("stat", name, "not a tracked statistic")
		}
		key = resolved
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, errors.NewValidationError(string(key), raw, "value must be a whole number")
	}

	return key, value, nil
}
