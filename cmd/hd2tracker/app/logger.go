package app

import (
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"

	"github.com/KaminaDuck/hd2-tracker/pkg/logging"
)

// NewLogger creates the application logger from configuration and
// installs it as the package-level default, so library code logging
// through pkg/logging follows the CLI's level and format.
//
// Log level precedence (highest to lowest):
//  1. --log-level flag or LOG_LEVEL environment variable
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)

	logConfig := &logging.Config{
		Level:   level,
		Format:  config.LogFormat,
		Output:  config.LogOutput,
		NoColor: config.NoColor,

		// Include caller info when debugging
		AddCaller: level == "debug" || level == "trace",
	}

	logging.Configure(logConfig)
	return *logging.Default()
}

// determineLogLevel determines the log level using clear precedence rules.
func determineLogLevel(config *Config) string {
	// 1. An explicit level always wins
	if config.LogLevel != "" {
		normalized := normalizeLogLevel(config.LogLevel)
		if normalized != config.LogLevel {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", config.LogLevel, normalized)
		}
		return normalized
	}

	// 2. Conflicting shortcuts resolve to the more restrictive one
	if config.Verbose && config.Quiet {
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	}

	// 3. Boolean shortcuts
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}

	// 4. Default
	return "info"
}

// logLevels are the accepted --log-level values.
var logLevels = []string{"trace", "debug", "info", "warn", "error"}

// normalizeLogLevel validates a log level string, falling back to
// "info" for anything unrecognized.
func normalizeLogLevel(level string) string {
	if slices.Contains(logLevels, level) {
		return level
	}
	return "info"
}
