// Package constants provides shared constants used throughout the hd2-tracker
// codebase. This includes timeouts, limits, file permissions, and other
// configuration values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultOCRTimeout is the standard timeout for a single OCR call against
	// the vision model API
	DefaultOCRTimeout = 60 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like API keys (rw-------)
	SecureFilePermissions = 0600
)

// Limit constants define various limits and capacities
const (
	// MaxUploadImages is the maximum number of screenshots accepted per scan.
	// Tie-breaking during merge is order-sensitive, so the bound keeps review
	// output small enough to reason about.
	MaxUploadImages = 3

	// MaxImageBytes is the maximum accepted size of a single screenshot
	MaxImageBytes = 8 * 1024 * 1024

	// MaxPlayerNameLength is the maximum allowed length for player names
	MaxPlayerNameLength = 64
)

// Default values
const (
	// DefaultGeminiModel is the vision model used for OCR when none is configured
	DefaultGeminiModel = "gemini-2.0-flash"

	// DefaultRosterDirName is the directory under the user home that holds
	// player record files
	DefaultRosterDirName = ".hd2tracker/roster"

	// DefaultConfigName is the config file cobra/viper looks for in the home
	// directory (without extension)
	DefaultConfigName = ".hd2tracker"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatHuman is a human-readable time format
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm MST"

	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)
