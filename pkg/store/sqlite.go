package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// snapshotID is the primary key of the only row ever written.
const snapshotID = 1

// snapshot holds the serialized collection.
type snapshot struct {
	ID        uint `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// TableName overrides the GORM default.
func (snapshot) TableName() string { return "snapshots" }

// SQLite keeps the collection as one JSON blob in a SQLite database.
type SQLite struct {
	path string
	db   *gorm.DB
}

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return nil, errors.WrapIO("create", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}

	if err := db.AutoMigrate(&snapshot{}); err != nil {
		return nil, errors.WrapIO("create", path, err)
	}

	return &SQLite{path: path, db: db}, nil
}

// Path returns the database file location.
func (s *SQLite) Path() string {
	return s.path
}

// Load reads the stored snapshot.
func (s *SQLite) Load() ([]books.Book, error) {
	var row snapshot
	err := s.db.Take(&row, snapshotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []books.Book{}, nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", s.path, err)
	}

	if isBlank(row.Data) {
		return []books.Book{}, nil
	}

	var records []books.Book
	if err := json.Unmarshal(row.Data, &records); err != nil {
		logging.Warn().
			Err(err).
			Str("path", s.path).
			Msg("Stored catalog snapshot is not readable as a book list, starting empty")
		return []books.Book{}, nil
	}

	return clone(records), nil
}

// Save replaces the stored snapshot in a single statement.
func (s *SQLite) Save(records []books.Book) error {
	data, err := json.Marshal(clone(records))
	if err != nil {
		return errors.WrapParse("json", s.path, err)
	}

	row := snapshot{ID: snapshotID, Data: data}
	err = s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return errors.WrapIO("write", s.path, err)
	}

	logging.Debug().Str("path", s.path).Int("records", len(records)).Msg("Saved catalog snapshot")
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
