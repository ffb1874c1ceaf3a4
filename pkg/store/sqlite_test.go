package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agentstation/bookshelf/pkg/store"
)

func openSQLite(t *testing.T) *store.SQLite {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "db", "books.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLite_LoadFresh(t *testing.T) {
	records, err := openSQLite(t).Load()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSQLite_LoadUnreadableSnapshot(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not json", []byte("not json")},
		{"empty blob", []byte{}},
		{"whitespace", []byte("  \n")},
		{"json null", []byte("null")},
		{"wrong shape", []byte(`{"id":"1"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "books.db")

			st, err := store.NewSQLite(path)
			require.NoError(t, err)
			require.NoError(t, st.Close())

			db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Silent),
			})
			require.NoError(t, err)
			require.NoError(t, db.Exec(
				"INSERT INTO snapshots (id, data, updated_at) VALUES (?, ?, ?)",
				1, tt.data, time.Now(),
			).Error)
			sqlDB, err := db.DB()
			require.NoError(t, err)
			require.NoError(t, sqlDB.Close())

			st, err = store.NewSQLite(path)
			require.NoError(t, err)
			defer st.Close()

			records, err := st.Load()
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestSQLite_RoundTrip(t *testing.T) {
	st := openSQLite(t)

	require.NoError(t, st.Save(sampleBooks()))
	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleBooks(), loaded)

	require.NoError(t, st.Save(sampleBooks()[1:]))
	loaded, err = st.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleBooks()[1:], loaded)
}

func TestSQLite_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")

	first, err := store.NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(sampleBooks()))
	require.NoError(t, first.Close())

	second, err := store.NewSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleBooks(), loaded)
}
