package app

import (
	"github.com/spf13/cobra"

	"github.com/KaminaDuck/hd2-tracker/cmd/hd2tracker/cmd/achievements"
	"github.com/KaminaDuck/hd2-tracker/cmd/hd2tracker/cmd/players"
	"github.com/KaminaDuck/hd2-tracker/cmd/hd2tracker/cmd/progress"
	"github.com/KaminaDuck/hd2-tracker/cmd/hd2tracker/cmd/scan"
)

// NewScanCommand creates the scan command with app dependencies.
func (a *App) NewScanCommand() *cobra.Command {
	return scan.NewCommand(a)
}

// NewPlayersCommand creates the players command with app dependencies.
func (a *App) NewPlayersCommand() *cobra.Command {
	return players.NewCommand(a)
}

// NewProgressCommand creates the progress command with app dependencies.
func (a *App) NewProgressCommand() *cobra.Command {
	return progress.NewCommand(a)
}

// NewAchievementsCommand creates the achievements command with app dependencies.
func (a *App) NewAchievementsCommand() *cobra.Command {
	return achievements.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("hd2tracker %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
