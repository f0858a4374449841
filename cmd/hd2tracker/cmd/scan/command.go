// Package scan provides the screenshot scanning command.
package scan

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	tracker "github.com/KaminaDuck/hd2-tracker"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/emoji"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/globals"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/output"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/table"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
)

// AppContext defines the interface that the scan command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Tracker() (tracker.Tracker, error)
}

// NewCommand creates the scan command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scan <image>...",
		GroupID: "core",
		Short:   "Scan career screenshots into merged statistics",
		Long: `Scan reads Helldivers 2 career screenshots with the Gemini vision
API and merges them into a single set of statistics. When the same
stat appears in several screenshots, the value read next to its
on-screen label wins over a value inferred from screen position; ties
keep the earliest upload.

Fields that only appeared by screen position are marked for review.
Check those against the screenshots before saving, and correct them
afterwards with 'players set' if needed.`,
		Example: `  hd2tracker scan career.png                         # Scan one screenshot
  hd2tracker scan page1.png page2.png                # Merge two screenshots
  hd2tracker scan career.png --save                  # Save under the detected name
  hd2tracker scan career.png --save --player Kai     # Save under a given name
  hd2tracker scan career.png -o json > result.json   # Structured output`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, app, args)
		},
	}

	cmd.Flags().String("player", "", "player name to save the record under")
	cmd.Flags().Bool("save", false, "save the merged result to the roster")
	cmd.Flags().Bool("stats-only", false, "skip the per-screenshot attempt summary")

	return cmd
}

// runScan scans the screenshots and renders the merged outcome.
func runScan(cmd *cobra.Command, app AppContext, paths []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	player, _ := cmd.Flags().GetString("player")
	save, _ := cmd.Flags().GetBool("save")
	statsOnly, _ := cmd.Flags().GetBool("stats-only")

	images := make([]scan.Image, 0, len(paths))
	for _, path := range paths {
		img, err := scan.ReadImage(path)
		if err != nil {
			return err
		}
		images = append(images, img)
	}

	tr, err := app.Tracker()
	if err != nil {
		return err
	}

	outcome, err := tr.Scan(cmd.Context(), images...)
	if err != nil {
		return err
	}

	// The per-screenshot summary is terminal chrome, so structured
	// output carries the merged result alone
	if flags.IsTable() && !statsOnly {
		formatter := output.NewFormatter(output.Format(flags.Output))
		if err := formatter.Format(os.Stdout, table.AttemptsToTableData(outcome.Attempts)); err != nil {
			return err
		}
		fmt.Println()
	}

	if err := output.FormatMerged(outcome, flags); err != nil {
		return err
	}

	if review := outcome.ReviewKeys(); len(review) > 0 && !flags.Quiet {
		labels := make([]string, len(review))
		for i, key := range review {
			labels[i] = key.Label()
		}
		fmt.Fprintf(os.Stderr, "%s %d field(s) were read by screen position and need review: %s\n",
			emoji.Warning, len(review), strings.Join(labels, ", "))
		fmt.Fprintln(os.Stderr, "Correct any wrong values with 'hd2tracker players set'.")
	}

	if save {
		return saveOutcome(cmd, tr, player, outcome, flags)
	}

	return nil
}

// saveOutcome submits the merged result to the roster. An explicit
// --player wins over the name detected in the screenshots.
func saveOutcome(cmd *cobra.Command, tr tracker.Tracker, player string, outcome *scan.Outcome, flags *globals.Flags) error {
	name := player
	if name == "" && outcome.Merged.PlayerName != nil {
		name = *outcome.Merged.PlayerName
	}
	if name == "" {
		return errors.NewValidationError("player", "",
			"no player name detected in the screenshots; pass --player")
	}

	rec, err := tr.Submit(cmd.Context(), name, outcome.Merged)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		fmt.Fprintf(os.Stderr, "%s Saved record for %s\n", emoji.Success, rec.Player)
	}
	return nil
}
