package catalog

import "github.com/rs/zerolog"

// Option configures a Catalog.
type Option func(*Catalog)

// WithPrompter sets the collaborator asked to confirm deletions.
func WithPrompter(p Prompter) Option {
	return func(c *Catalog) {
		if p != nil {
			c.prompter = p
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}
