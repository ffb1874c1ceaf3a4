// Package status implements the status command.
package status

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/prompt"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewCommand creates the status command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "status [id status]",
		GroupID: "core",
		Short:   "Mark a book available or borrowed",
		Long: `Status sets a book's status to available or borrowed (also в наличии,
выдана). Setting the status a book already has changes nothing.`,
		Example: `  bookshelf status 1 borrowed
  bookshelf status 1 available`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return Interactive(app)
			}
			return Run(app, args[0], args[1])
		},
	}
}

// Run changes the status of the book with id.
func Run(app appcontext.Interface, id, status string) error {
	if err := prompt.ID()(id); err != nil {
		return err
	}
	st, err := books.ParseStatus(status)
	if err != nil {
		return err
	}

	c, err := app.Catalog()
	if err != nil {
		return err
	}

	res, err := c.ChangeStatus(strings.TrimSpace(id), st)
	if err != nil {
		return err
	}
	return app.Notifier().Result(res)
}

// Interactive asks for the id and the new status.
func Interactive(app appcontext.Interface) error {
	p := app.Prompter()

	id, err := p.Ask("Enter the ID of the book", prompt.ID())
	if errors.IsCanceled(err) {
		return app.Notifier().Info("Status change cancelled.")
	}
	if err != nil {
		return err
	}

	st, err := p.Ask("Enter the new status (available, borrowed)", prompt.Status())
	if errors.IsCanceled(err) {
		return app.Notifier().Info("Status change cancelled.")
	}
	if err != nil {
		return err
	}

	return Run(app, id, st)
}
