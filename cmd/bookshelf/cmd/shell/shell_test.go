package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/store"
)

func setup(t *testing.T, input string) (*appcontext.Mock, *store.Memory, *bytes.Buffer) {
	t.Helper()
	mem := store.NewMemory()
	c, err := catalog.New(mem, catalog.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	var out bytes.Buffer
	return appcontext.NewMock(c, input, &out, "table"), mem, &out
}

func TestShellSession(t *testing.T) {
	input := strings.Join([]string{
		"1", "1984", "George Orwell", "1949", // add
		"5", "1", "borrowed", // status
		"3", "author", "Orwell", // search
		"4",           // list
		"2", "1", "y", // delete
		"4", // list again
		"6",
	}, "\n") + "\n"
	app, mem, out := setup(t, input)

	require.NoError(t, Run(app, out))

	assert.Empty(t, mem.Records())
	text := out.String()
	assert.Contains(t, text, "Book '1984' added to the catalog with ID 1.")
	assert.Contains(t, text, "changed to 'borrowed'")
	assert.Contains(t, text, "Book with ID 1 removed from the catalog.")
	assert.Contains(t, text, "No books in the catalog.")
	assert.Contains(t, text, "Goodbye!")
	assert.Equal(t, 7, strings.Count(text, "Choose an action:"))
}

func TestShellInvalidChoice(t *testing.T) {
	app, _, out := setup(t, "9\n6\n")

	require.NoError(t, Run(app, out))

	assert.Contains(t, out.String(), "Invalid choice. Try again.")
	assert.Equal(t, 2, strings.Count(out.String(), "Choose an action:"))
}

func TestShellEndOfInput(t *testing.T) {
	app, mem, out := setup(t, "1\nDune\n")

	require.NoError(t, Run(app, out))

	assert.Empty(t, mem.Records())
	assert.Contains(t, out.String(), "Adding the book was cancelled.")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestShellCommand(t *testing.T) {
	app, _, out := setup(t, "6\n")

	cmd := NewCommand(app)
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "1. Add a book")
}
