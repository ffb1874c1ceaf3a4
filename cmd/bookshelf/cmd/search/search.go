// Package search implements the search command.
package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/cmd/prompt"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewCommand creates the search command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "search [field term]",
		GroupID: "core",
		Short:   "Find books by title, author or year",
		Long: `Search lists the books whose field contains term, ignoring case.
Fields are title, author and year (also название, автор, год).`,
		Example: `  bookshelf search author orwell
  bookshelf search year 19`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return Interactive(app, cmd.OutOrStdout())
			}
			return Run(app, cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

// Run searches field for term and writes the matches to w.
func Run(app appcontext.Interface, w io.Writer, field, term string) error {
	f, err := books.ParseField(field)
	if err != nil {
		return err
	}
	if err := prompt.NotEmpty("search term")(term); err != nil {
		return err
	}

	c, err := app.Catalog()
	if err != nil {
		return err
	}

	found := c.Search(f, strings.TrimSpace(term))
	app.Logger().Debug().Str("field", string(f)).Str("term", term).Int("matches", len(found)).Msg("Search")

	format := output.DetectFormat(app.OutputFormat())
	if len(found) == 0 && format.Tabular() {
		return app.Notifier().Info("No books found.")
	}
	return output.Books(output.NewFormatter(format), w, found)
}

// Interactive asks for the field and the term.
func Interactive(app appcontext.Interface, w io.Writer) error {
	p := app.Prompter()

	field, err := p.Ask("Enter the search field (title, author, year)", prompt.Field())
	if errors.IsCanceled(err) {
		return app.Notifier().Info("Search cancelled.")
	}
	if err != nil {
		return err
	}

	term, err := p.Ask("Enter the search term", prompt.NotEmpty("search term"))
	if errors.IsCanceled(err) {
		return app.Notifier().Info("Search cancelled.")
	}
	if err != nil {
		return err
	}

	return Run(app, w, field, term)
}
