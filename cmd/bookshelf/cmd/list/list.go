// Package list implements the list command.
package list

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the list command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List every book in the catalog",
		Example: `  bookshelf list
  bookshelf ls -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(app, cmd.OutOrStdout())
		},
	}
}

// Run writes the whole catalog to w in insertion order.
func Run(app appcontext.Interface, w io.Writer) error {
	c, err := app.Catalog()
	if err != nil {
		return err
	}

	all := c.List()
	format := output.DetectFormat(app.OutputFormat())
	if len(all) == 0 && format.Tabular() {
		return app.Notifier().Info("No books in the catalog.")
	}
	return output.Books(output.NewFormatter(format), w, all)
}
