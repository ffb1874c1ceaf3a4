package store_test

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/store"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	t.Run("default backend is file", func(t *testing.T) {
		st, err := store.Open("", filepath.Join(dir, "a.json"))
		require.NoError(t, err)
		assert.IsType(t, &store.File{}, st)
	})

	t.Run("sqlite backend", func(t *testing.T) {
		st, err := store.Open("SQLite", filepath.Join(dir, "a.db"))
		require.NoError(t, err)
		assert.IsType(t, &store.SQLite{}, st)
		closer, ok := st.(io.Closer)
		require.True(t, ok)
		assert.NoError(t, closer.Close())
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := store.Open("s3", filepath.Join(dir, "a"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown backend s3")
	})
}

func TestMemory(t *testing.T) {
	seed := books.Book{ID: "1", Title: "Dune", Author: "Frank Herbert", Year: 1965, Status: books.StatusAvailable}
	m := store.NewMemory(seed)

	loaded, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, []books.Book{seed}, loaded)

	// Mutating the loaded copy does not touch the store.
	loaded[0].Title = "changed"
	assert.Equal(t, "Dune", m.Records()[0].Title)

	require.NoError(t, m.Save(nil))
	assert.Empty(t, m.Records())
	assert.Equal(t, 1, m.Loads())
	assert.Equal(t, 1, m.Saves())

	m.SaveErr = errors.New("disk full")
	assert.Error(t, m.Save(nil))
	assert.Equal(t, 1, m.Saves())
}
