// Package remove implements the delete command.
package remove

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/prompt"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewCommand creates the delete command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		GroupID: "core",
		Short:   "Delete a book after confirmation",
		Long: `Delete removes a book by ID. The title is shown and the removal only
happens when the answer is yes, y, да or д.`,
		Example: `  bookshelf delete 3
  bookshelf rm 3 --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return Interactive(app)
			}
			return Run(app, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion without asking")

	return cmd
}

// Run deletes the book with id. With yes set the confirmation is answered
// affirmatively without reading input.
func Run(app appcontext.Interface, id string, yes bool) error {
	if err := prompt.ID()(id); err != nil {
		return err
	}

	c, err := app.Catalog()
	if err != nil {
		return err
	}

	var confirm catalog.Prompter = app.Prompter()
	if yes {
		confirm = catalog.Answer("yes")
	}

	res, err := c.DeleteWith(strings.TrimSpace(id), confirm)
	if err != nil {
		return err
	}
	return app.Notifier().Result(res)
}

// Interactive asks for the id, then for confirmation.
func Interactive(app appcontext.Interface) error {
	id, err := app.Prompter().Ask("Enter the ID of the book to delete", prompt.ID())
	if errors.IsCanceled(err) {
		return app.Notifier().Info("Deletion cancelled.")
	}
	if err != nil {
		return err
	}
	return Run(app, id, false)
}
