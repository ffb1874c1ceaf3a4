// Package catalog holds the authoritative in-memory book collection and the
// operations over it. Every successful mutation is written back through the
// injected store.Store before the operation returns.
//
// Inputs are expected to be validated by the caller (see books.ParseStatus,
// books.ParseField and the CLI prompt validators); the catalog stores what it
// is given and never repairs fields.
package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/store"
)

// Catalog is the book collection. It is not safe for concurrent use.
type Catalog struct {
	store    store.Store
	prompter Prompter
	logger   *zerolog.Logger
	fold     cases.Caser

	books []books.Book
}

// New loads the collection from st once and returns the catalog over it.
func New(st store.Store, opts ...Option) (*Catalog, error) {
	if st == nil {
		return nil, errors.NewValidationError("store", nil, "a store is required")
	}

	c := &Catalog{
		store:    st,
		prompter: declineAll{},
		logger:   logging.Default(),
		fold:     cases.Fold(),
	}
	for _, opt := range opts {
		opt(c)
	}

	records, err := st.Load()
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", "", err)
	}
	c.books = records

	c.logger.Debug().Int("records", len(records)).Msg("Catalog loaded")
	return c, nil
}

// Add stores a new available book and returns it. year is the decimal text
// received from the caller.
func (c *Catalog) Add(title, author, year string) (books.Book, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return books.Book{}, errors.NewValidationError("year", year, "must be an integer")
	}

	book := books.Book{
		ID:     c.nextID(),
		Title:  title,
		Author: author,
		Year:   y,
		Status: books.StatusAvailable,
	}

	c.books = append(c.books, book)
	if err := c.persist(); err != nil {
		c.books = c.books[:len(c.books)-1]
		return books.Book{}, errors.WrapResource("add", "book", book.ID, err)
	}

	c.logger.Debug().Str("book_id", book.ID).Str("title", book.Title).Msg("Book added")
	return book, nil
}

// Delete removes the book with id after the prompter confirms it.
func (c *Catalog) Delete(id string) (Result, error) {
	return c.DeleteWith(id, c.prompter)
}

// DeleteWith is Delete with a one-off confirmation prompter.
func (c *Catalog) DeleteWith(id string, p Prompter) (Result, error) {
	if p == nil {
		p = c.prompter
	}
	i := c.index(id)
	if i < 0 {
		return Result{Outcome: OutcomeNotFound, ID: id}, nil
	}
	book := c.books[i]

	answer, err := p.Prompt(confirmQuestion(book))
	if err != nil {
		if errors.IsCanceled(err) {
			return Result{Outcome: OutcomeCancelled, ID: id, Book: book}, nil
		}
		return Result{}, errors.WrapResource("delete", "book", id, err)
	}
	if !IsAffirmative(answer) {
		c.logger.Debug().Str("book_id", id).Str("answer", answer).Msg("Deletion declined")
		return Result{Outcome: OutcomeCancelled, ID: id, Book: book}, nil
	}

	prev := c.books
	c.books = slices.Delete(slices.Clone(c.books), i, i+1)
	if err := c.persist(); err != nil {
		c.books = prev
		return Result{}, errors.WrapResource("delete", "book", id, err)
	}

	c.logger.Debug().Str("book_id", id).Msg("Book deleted")
	return Result{Outcome: OutcomeDeleted, ID: id, Book: book}, nil
}

// Search returns, in collection order, every book whose field contains term
// ignoring case. No match, or a field not known to books.ParseField, yields
// an empty slice.
func (c *Catalog) Search(field books.Field, term string) []books.Book {
	matches := []books.Book{}
	if !field.Valid() {
		return matches
	}

	needle := c.fold.String(term)
	for _, b := range c.books {
		if strings.Contains(c.fold.String(field.Value(b)), needle) {
			matches = append(matches, b)
		}
	}
	return matches
}

// List returns every book in insertion order.
func (c *Catalog) List() []books.Book {
	return slices.Clone(c.books)
}

// ChangeStatus sets the status of the book with id. Setting the status the
// book already has is reported as OutcomeUnchanged and saves nothing.
func (c *Catalog) ChangeStatus(id string, status books.Status) (Result, error) {
	i := c.index(id)
	if i < 0 {
		return Result{Outcome: OutcomeNotFound, ID: id}, nil
	}

	book := c.books[i]
	if book.Status == status {
		return Result{Outcome: OutcomeUnchanged, ID: id, Book: book}, nil
	}

	previous := book.Status
	c.books[i].Status = status
	if err := c.persist(); err != nil {
		c.books[i].Status = previous
		return Result{}, errors.WrapResource("update", "book", id, err)
	}

	c.logger.Debug().
		Str("book_id", id).
		Str("from", string(previous)).
		Str("to", string(status)).
		Msg("Book status changed")
	return Result{Outcome: OutcomeStatusChanged, ID: id, Book: c.books[i]}, nil
}

// Get returns the book with id.
func (c *Catalog) Get(id string) (books.Book, bool) {
	if i := c.index(id); i >= 0 {
		return c.books[i], true
	}
	return books.Book{}, false
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// nextID is one more than the largest numeric id present, or "1".
func (c *Catalog) nextID() string {
	highest := 0
	for _, b := range c.books {
		if n, ok := b.NumericID(); ok && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}

func (c *Catalog) index(id string) int {
	return slices.IndexFunc(c.books, func(b books.Book) bool { return b.ID == id })
}

func (c *Catalog) persist() error {
	return c.store.Save(c.books)
}

// IsAffirmative reports whether answer is one of the accepted "yes" replies.
func IsAffirmative(answer string) bool {
	answer = strings.TrimSpace(answer)
	for _, yes := range constants.AffirmativeAnswers {
		if strings.EqualFold(answer, yes) {
			return true
		}
	}
	return false
}
