// Package app provides the application context and dependency management
// for the bookshelf CLI. It centralizes configuration, logging, the storage
// backend and the catalog, and owns their lifecycle.
package app

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/notify"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/cmd/prompt"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/store"
)

// App represents the bookshelf application with all its dependencies.
// It is used from a single goroutine.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	in  io.Reader
	out io.Writer

	// Lazily initialized on first use.
	store    store.Store
	catalog  *catalog.Catalog
	prompter *prompt.Prompter
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and config file and can be
// replaced with functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		in:      os.Stdin,
		out:     os.Stdout,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger
	logging.SetDefault(logger)

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value, empty for auto-detection.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Store returns the storage backend, opening it on first use.
func (a *App) Store() (store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	st, err := store.Open(a.config.Backend, a.config.File)
	if err != nil {
		return nil, errors.WrapResource("open", "store", a.config.File, err)
	}
	a.logger.Debug().
		Str("backend", a.config.Backend).
		Str("file", a.config.File).
		Msg("Store opened")

	a.store = st
	return st, nil
}

// Catalog returns the catalog, loading it from the store on first use.
func (a *App) Catalog() (*catalog.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}

	st, err := a.Store()
	if err != nil {
		return nil, err
	}

	c, err := catalog.New(st,
		catalog.WithPrompter(a.Prompter()),
		catalog.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	a.catalog = c
	return c, nil
}

// Prompter returns the prompter reading the app's input. A single instance
// is kept so buffered input is never lost between questions.
func (a *App) Prompter() *prompt.Prompter {
	if a.prompter == nil {
		a.prompter = prompt.New(a.in, a.out)
	}
	return a.prompter
}

// Notifier returns a report channel matching the current output settings.
func (a *App) Notifier() *notify.Notifier {
	config := notify.DefaultConfig()
	config.OutputFormat = output.DetectFormat(a.config.Format)
	config.Writer = a.out
	config.UseColor = !a.config.NoColor
	config.Quiet = a.config.Quiet
	return notify.New(config)
}

// Shutdown releases the storage backend.
func (a *App) Shutdown(_ context.Context) error {
	closer, ok := a.store.(io.Closer)
	if !ok {
		return nil
	}
	a.store = nil
	a.catalog = nil
	if err := closer.Close(); err != nil {
		return errors.WrapResource("close", "store", a.config.File, err)
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		logger := NewLogger(config)
		a.logger = &logger
		logging.SetDefault(logger)
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets the storage backend instead of opening one from config.
func WithStore(st store.Store) Option {
	return func(a *App) error {
		a.store = st
		return nil
	}
}

// WithIO sets the streams used for prompts and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		return nil
	}
}
