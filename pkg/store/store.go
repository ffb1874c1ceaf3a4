// Package store persists the whole book collection as a single document.
//
// A Store has no business logic: Load returns whatever collection is on the
// backing medium and Save replaces it entirely. A missing, empty or
// unreadable-as-data location is a fresh catalog, not an error; only real
// I/O failures are reported.
package store

import (
	"strings"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Store loads and saves the full collection.
type Store interface {
	// Load returns the persisted collection, or an empty one when nothing
	// usable is persisted. Errors are fatal I/O failures.
	Load() ([]books.Book, error)

	// Save overwrites the persisted collection with records.
	Save(records []books.Book) error
}

// Compile-time interface checks.
var (
	_ Store = (*File)(nil)
	_ Store = (*SQLite)(nil)
	_ Store = (*Memory)(nil)
)

// Open returns the store for backend at path. An empty backend selects the
// file store.
func Open(backend, path string) (Store, error) {
	if path == "" {
		path = constants.DefaultDataFile
	}

	switch strings.ToLower(backend) {
	case "", constants.BackendFile:
		return NewFile(path), nil
	case constants.BackendSQLite:
		st, err := NewSQLite(path)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, errors.NewConfigError("store", "unknown backend "+backend, nil)
	}
}

// clone returns a non-nil copy of records.
func clone(records []books.Book) []books.Book {
	out := make([]books.Book, len(records))
	copy(out, records)
	return out
}
