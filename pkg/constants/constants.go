// Package constants provides shared constants used throughout the bookshelf codebase.
// This includes file permissions, default locations and the fixed vocabularies
// that must stay consistent between the catalog and the command line.
package constants

import "time"

// Timeout constants
const (
	// ShutdownTimeout bounds graceful shutdown after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Storage constants
const (
	// DefaultDataFile is the catalog file used when none is configured
	DefaultDataFile = "books.json"

	// BackendFile stores the catalog as a JSON or YAML document
	BackendFile = "file"

	// BackendSQLite stores the catalog as a blob inside a SQLite database
	BackendSQLite = "sqlite"

	// JSONIndent matches the layout of catalogs written by earlier releases
	JSONIndent = "    "
)

// Path constants
const (
	// ConfigName is the base name of the config file searched in $HOME and ./
	ConfigName = ".bookshelf"

	// EnvPrefix prefixes every environment variable read by the CLI
	EnvPrefix = "BOOKSHELF"
)

// Interactive input constants
const (
	// CancelWord aborts any interactive prompt
	CancelWord = "stop"
)

// AffirmativeAnswers are the replies accepted as "yes" by confirmation prompts.
// Matching is case-insensitive.
var AffirmativeAnswers = []string{"yes", "y", "да", "д"}
