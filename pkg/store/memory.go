package store

import "github.com/agentstation/bookshelf/pkg/books"

// Memory is an in-process Store. It is useful for tests and for embedding the
// catalog without touching the filesystem.
type Memory struct {
	records []books.Book
	loads   int
	saves   int

	// LoadErr and SaveErr, when set, are returned by Load and Save.
	LoadErr error
	SaveErr error
}

// NewMemory returns a Memory store seeded with records.
func NewMemory(seed ...books.Book) *Memory {
	return &Memory{records: clone(seed)}
}

// Load returns a copy of the stored records.
func (m *Memory) Load() ([]books.Book, error) {
	m.loads++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return clone(m.records), nil
}

// Save replaces the stored records with a copy of records.
func (m *Memory) Save(records []books.Book) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.saves++
	m.records = clone(records)
	return nil
}

// Records returns a copy of what was last saved.
func (m *Memory) Records() []books.Book {
	return clone(m.records)
}

// Loads returns how many times Load was called.
func (m *Memory) Loads() int { return m.loads }

// Saves returns how many successful Save calls were made.
func (m *Memory) Saves() int { return m.saves }
