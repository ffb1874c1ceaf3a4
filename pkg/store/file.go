package store

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kjk/common/atomicfile"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// File keeps the collection in a single JSON or YAML file.
type File struct {
	path  string
	codec codec
}

// NewFile returns a File store for path. Paths ending in .yaml or .yml are
// written as YAML, everything else as JSON.
func NewFile(path string) *File {
	return &File{path: path, codec: codecFor(path)}
}

// Path returns the backing file location.
func (f *File) Path() string {
	return f.path
}

// Load reads the whole file.
func (f *File) Load() ([]books.Book, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debug().Str("path", f.path).Msg("Catalog file does not exist, starting empty")
			return []books.Book{}, nil
		}
		return nil, errors.WrapIO("read", f.path, err)
	}

	if isBlank(data) {
		return []books.Book{}, nil
	}

	records, err := f.codec.Decode(data)
	if err != nil {
		logging.Warn().
			Err(err).
			Str("path", f.path).
			Str("format", f.codec.Name()).
			Msg("Catalog file is not readable as a book list, starting empty")
		return []books.Book{}, nil
	}

	logging.Debug().Str("path", f.path).Int("records", len(records)).Msg("Loaded catalog file")
	return records, nil
}

// Save replaces the file contents. The new content becomes visible only
// once it is completely written.
func (f *File) Save(records []books.Book) error {
	data, err := f.codec.Encode(records)
	if err != nil {
		return errors.WrapParse(f.codec.Name(), f.path, err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	w, err := atomicfile.New(f.path)
	if err != nil {
		return errors.WrapIO("create", f.path, err)
	}
	// calling Close() twice is a no-op
	defer w.Close()

	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", f.path, err)
	}
	if err := w.Close(); err != nil {
		return errors.WrapIO("write", f.path, err)
	}
	// atomicfile creates its temp file 0600
	if err := os.Chmod(f.path, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", f.path, err)
	}

	logging.Debug().Str("path", f.path).Int("records", len(records)).Msg("Saved catalog file")
	return nil
}
