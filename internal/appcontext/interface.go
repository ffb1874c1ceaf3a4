// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App so they can be tested against a Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/cmd/notify"
	"github.com/agentstation/bookshelf/internal/cmd/prompt"
	"github.com/agentstation/bookshelf/pkg/catalog"
)

// Interface defines the application context interface that commands need.
type Interface interface {
	// Catalog returns the process-wide catalog, loading it on first use.
	Catalog() (*catalog.Catalog, error)

	// Prompter returns the interactive reader bound to the app's input.
	Prompter() *prompt.Prompter

	// Notifier returns the report channel for operation outcomes.
	Notifier() *notify.Notifier

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	// An empty value means auto-detect.
	OutputFormat() string

	// Version returns the application version string.
	Version() string
}
