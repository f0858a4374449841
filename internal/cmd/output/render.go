// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"os"

	"github.com/KaminaDuck/hd2-tracker/internal/cmd/constants"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/globals"
	"github.com/KaminaDuck/hd2-tracker/internal/cmd/table"
	"github.com/KaminaDuck/hd2-tracker/pkg/achievements"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// FormatMerged handles the common pattern of formatting a scan outcome
// for output. Table formats show the merged statistics with confidence
// and source columns; structured formats emit the merged parse result
// itself, which is the piece a pipeline consumer wants.
func FormatMerged(outcome *scan.Outcome, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.MergedToTableData(outcome)
	default:
		outputData = outcome.Merged
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatPlayers handles the common pattern of formatting roster
// records for output.
func FormatPlayers(records []*stats.Record, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, "":
		outputData = table.PlayersToTableData(records, false)
	case constants.FormatWide:
		outputData = table.PlayersToTableData(records, true)
	default:
		outputData = records
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatRecord handles the common pattern of formatting a single
// player record for output.
func FormatRecord(rec *stats.Record, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.RecordToTableData(rec)
	default:
		outputData = rec
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatProgress handles the common pattern of formatting achievement
// progress for output.
func FormatProgress(progress []achievements.Progress, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.ProgressToTableData(progress)
	default:
		outputData = progress
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatAchievements handles the common pattern of formatting the
// achievement catalog for output.
func FormatAchievements(list []achievements.Achievement, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	var outputData any
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, "":
		outputData = table.AchievementsToTableData(list)
	default:
		outputData = list
	}

	return formatter.Format(os.Stdout, outputData)
}
