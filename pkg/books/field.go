package books

import (
	"strconv"
	"strings"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Field names a searchable attribute of a Book.
type Field string

// Searchable fields.
const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
	FieldYear   Field = "year"
)

// accessors is the closed set of searchable fields.
var accessors = map[Field]func(Book) string{
	FieldTitle:  func(b Book) string { return b.Title },
	FieldAuthor: func(b Book) string { return b.Author },
	FieldYear:   func(b Book) string { return strconv.Itoa(b.Year) },
}

var fieldAliases = map[string]Field{
	"title":    FieldTitle,
	"название": FieldTitle,
	"author":   FieldAuthor,
	"автор":    FieldAuthor,
	"year":     FieldYear,
	"год":      FieldYear,
}

// ParseField converts user input to a Field, rejecting anything that is not
// title, author or year.
func ParseField(s string) (Field, error) {
	if f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", errors.NewValidationError("field", s, "must be one of title, author, year")
}

// Fields returns the searchable fields in display order.
func Fields() []Field {
	return []Field{FieldTitle, FieldAuthor, FieldYear}
}

// Value returns the string form of the field for b. It panics on a Field that
// did not come from ParseField or the exported constants.
func (f Field) Value(b Book) string {
	get, ok := accessors[f]
	if !ok {
		panic("books: unknown field " + strconv.Quote(string(f)))
	}
	return get(b)
}

// Valid reports whether f is one of the searchable fields.
func (f Field) Valid() bool {
	_, ok := accessors[f]
	return ok
}
