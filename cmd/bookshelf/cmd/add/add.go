// Package add implements the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/prompt"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewCommand creates the add command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "add [title author year]",
		GroupID: "core",
		Short:   "Add a book to the catalog",
		Long: `Add stores a new book with status "available" and assigns it the next
free ID.

With no arguments the title, author and year are asked for interactively;
type 'stop' at any question to cancel.`,
		Example: `  bookshelf add "1984" "George Orwell" 1949
  bookshelf add`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("accepts 0 or 3 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return Interactive(app)
			}
			return Run(app, args[0], args[1], args[2])
		},
	}
}

type field struct {
	question string
	validate prompt.Validator
}

var fields = []field{
	{"Enter the book title", prompt.NotEmpty("title")},
	{"Enter the book author", prompt.NotEmpty("author")},
	{"Enter the publication year", prompt.Year()},
}

// Run validates title, author and year the same way the interactive flow
// does and adds the book.
func Run(app appcontext.Interface, title, author, year string) error {
	values := []string{title, author, year}
	for i, f := range fields {
		if err := f.validate(values[i]); err != nil {
			return err
		}
	}
	return add(app, values)
}

// Interactive asks for every field, re-asking until the answer is valid.
func Interactive(app appcontext.Interface) error {
	p := app.Prompter()
	values := make([]string, 0, len(fields))
	for _, f := range fields {
		v, err := p.Ask(f.question, f.validate)
		if errors.IsCanceled(err) {
			return app.Notifier().Info("Adding the book was cancelled.")
		}
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	return add(app, values)
}

func add(app appcontext.Interface, values []string) error {
	c, err := app.Catalog()
	if err != nil {
		return err
	}
	book, err := c.Add(values[0], values[1], values[2])
	if err != nil {
		return err
	}
	return app.Notifier().Result(catalog.Added(book))
}
