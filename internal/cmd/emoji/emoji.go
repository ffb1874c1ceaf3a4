// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents successful completion of an operation.
	// Used for: added, deleted and status-changed books.
	Success = "✓"

	// Error represents failures.
	Error = "✗"

	// Warning represents non-fatal problems.
	// Used for: unknown book ids.
	Warning = "!"

	// Info represents informational messages.
	// Used for: unchanged status, cancelled deletions, empty listings.
	Info = "i"
)
