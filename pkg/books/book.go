// Package books defines the book record stored by the catalog together with
// its status and searchable-field vocabularies.
package books

import (
	"strconv"
	"strings"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Book is a single catalog entry. Field names match the on-disk format.
type Book struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Year   int    `json:"year" yaml:"year"`
	Status Status `json:"status" yaml:"status"`
}

// Status is the availability state of a book.
type Status string

// Status values as they are written to disk.
const (
	StatusAvailable Status = "available"
	StatusBorrowed  Status = "borrowed"
)

// statusAliases maps accepted user input to canonical statuses.
var statusAliases = map[string]Status{
	"available": StatusAvailable,
	"в наличии": StatusAvailable,
	"borrowed":  StatusBorrowed,
	"выдана":    StatusBorrowed,
}

// String returns the status as stored.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts user input to a canonical Status.
func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", errors.NewValidationError("status", s,
		"must be one of "+string(StatusAvailable)+", "+string(StatusBorrowed))
}

// Statuses returns the canonical statuses in display order.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusBorrowed}
}

// NumericID returns the id as an integer. ok is false for ids that are not
// decimal integers, which can only come from hand-edited files.
func (b Book) NumericID() (n int, ok bool) {
	n, err := strconv.Atoi(b.ID)
	return n, err == nil
}
