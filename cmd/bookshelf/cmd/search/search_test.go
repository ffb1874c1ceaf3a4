package search

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/store"
)

var seed = []books.Book{
	{ID: "1", Title: "1984", Author: "George Orwell", Year: 1949, Status: books.StatusAvailable},
	{ID: "2", Title: "Animal Farm", Author: "George Orwell", Year: 1945, Status: books.StatusAvailable},
	{ID: "3", Title: "Dune", Author: "Frank Herbert", Year: 1965, Status: books.StatusBorrowed},
}

func setup(t *testing.T, input, format string) (*appcontext.Mock, *bytes.Buffer) {
	t.Helper()
	c, err := catalog.New(store.NewMemory(seed...), catalog.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	var out bytes.Buffer
	return appcontext.NewMock(c, input, &out, format), &out
}

func decode(t *testing.T, out *bytes.Buffer) []books.Book {
	t.Helper()
	var got []books.Book
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	return got
}

func TestSearchAuthor(t *testing.T) {
	app, out := setup(t, "", "json")

	cmd := NewCommand(app)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"author", "orwell"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, seed[:2], decode(t, out))
}

func TestSearchLocalizedField(t *testing.T) {
	app, out := setup(t, "", "json")
	require.NoError(t, Run(app, out, "год", "196"))
	assert.Equal(t, seed[2:], decode(t, out))
}

func TestSearchNoMatch(t *testing.T) {
	app, out := setup(t, "", "table")
	require.NoError(t, Run(app, out, "title", "missing"))
	assert.Contains(t, out.String(), "No books found.")
}

func TestSearchNoMatchJSON(t *testing.T) {
	app, out := setup(t, "", "json")
	require.NoError(t, Run(app, out, "title", "missing"))
	assert.Equal(t, "[]\n", out.String())
}

func TestSearchUnknownField(t *testing.T) {
	app, out := setup(t, "", "json")
	err := Run(app, out, "isbn", "123")
	assert.True(t, errors.IsValidationError(err))
}

func TestSearchInteractive(t *testing.T) {
	app, out := setup(t, "publisher\ntitle\n\nfarm\n", "table")

	require.NoError(t, Interactive(app, out))

	assert.Contains(t, out.String(), "must be one of title, author, year")
	assert.Contains(t, out.String(), "search term cannot be empty")
	assert.Contains(t, out.String(), "Animal Farm")
	assert.NotContains(t, out.String(), "Dune")
}

func TestSearchInteractiveCancel(t *testing.T) {
	app, out := setup(t, "stop\n", "table")
	require.NoError(t, Interactive(app, out))
	assert.Contains(t, out.String(), "Search cancelled.")
}
