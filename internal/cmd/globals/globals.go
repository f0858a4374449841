// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import (
	"github.com/spf13/cobra"

	"github.com/KaminaDuck/hd2-tracker/internal/cmd/constants"
)

// Flags holds global common flags across all commands.
type Flags struct {
	Output  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// Parse extracts global flags from the command hierarchy. The flags
// are defined as persistent flags on the root command; subcommands use
// Parse to read them without carrying a flags struct around.
func Parse(cmd *cobra.Command) (*Flags, error) {
	// Walk up the command hierarchy to find persistent flags
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}

	output, _ := root.PersistentFlags().GetString("output")
	quiet, _ := root.PersistentFlags().GetBool("quiet")
	verbose, _ := root.PersistentFlags().GetBool("verbose")
	noColor, _ := root.PersistentFlags().GetBool("no-color")

	return &Flags{
		Output:  output,
		Quiet:   quiet,
		Verbose: verbose,
		NoColor: noColor,
	}, nil
}

// IsTable reports whether the configured output format renders as a
// table. An empty format defaults to table rendering.
func (f *Flags) IsTable() bool {
	return f.Output == "" || f.Output == constants.FormatTable || f.Output == constants.FormatWide
}
