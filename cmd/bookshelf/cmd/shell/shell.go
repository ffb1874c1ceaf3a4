// Package shell implements the interactive menu.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/add"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/list"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/remove"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/search"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/status"
	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/pkg/errors"
)

const menu = `
Choose an action:
1. Add a book
2. Delete a book
3. Search books
4. List all books
5. Change book status
6. Exit
`

// NewCommand creates the shell command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		GroupID: "interactive",
		Short:   "Run the interactive menu",
		Long: `Shell shows a numbered menu and runs the chosen action until 6 (exit)
is selected or input ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(app, cmd.OutOrStdout())
		},
	}
}

// Run loops over the menu until exit. Only storage failures end it early.
func Run(app appcontext.Interface, w io.Writer) error {
	// Fail before the first menu when the catalog cannot be loaded.
	if _, err := app.Catalog(); err != nil {
		return err
	}

	actions := map[string]func() error{
		"1": func() error { return add.Interactive(app) },
		"2": func() error { return remove.Interactive(app) },
		"3": func() error { return search.Interactive(app, w) },
		"4": func() error { return list.Run(app, w) },
		"5": func() error { return status.Interactive(app) },
	}

	p := app.Prompter()
	for {
		fmt.Fprint(w, menu)
		choice, err := p.Prompt("Enter the action number")
		if errors.IsCanceled(err) {
			return goodbye(app)
		}
		if err != nil {
			return err
		}
		choice = strings.TrimSpace(choice)

		if choice == "6" {
			return goodbye(app)
		}
		action, ok := actions[choice]
		if !ok {
			if err := app.Notifier().Warning("Invalid choice. Try again."); err != nil {
				return err
			}
			continue
		}

		app.Logger().Debug().Str("choice", choice).Msg("Menu action")
		if err := action(); err != nil {
			return err
		}
	}
}

func goodbye(app appcontext.Interface) error {
	return app.Notifier().Success("Goodbye!")
}
