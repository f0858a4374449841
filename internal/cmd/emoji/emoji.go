// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output provide a consistent visual language across commands.
// These symbols are used for status indicators and user feedback in terminal output.
const (
	// Success represents successful completion of an operation.
	// Used for: scanned screenshots, unlocked achievements, saved records.
	Success = "✓"

	// Error represents failures or missing required configuration.
	// Used for: failed scans, missing API keys, validation errors.
	Error = "✗"

	// Warning represents values that need human attention.
	// Used for: merged statistics read by screen position that need review.
	Warning = "!"

	// Optional represents absent or not-yet-reached states.
	// Used for: locked achievements, fields no screenshot produced.
	Optional = "-"
)
