package catalog

import (
	"fmt"

	"github.com/agentstation/bookshelf/pkg/books"
)

// Outcome classifies the result of a catalog operation.
type Outcome int

// Outcomes reported by Add, Delete and ChangeStatus.
const (
	OutcomeAdded Outcome = iota + 1
	OutcomeDeleted
	OutcomeStatusChanged
	OutcomeNotFound
	OutcomeUnchanged
	OutcomeCancelled
)

var outcomeNames = map[Outcome]string{
	OutcomeAdded:         "added",
	OutcomeDeleted:       "deleted",
	OutcomeStatusChanged: "status_changed",
	OutcomeNotFound:      "not_found",
	OutcomeUnchanged:     "unchanged",
	OutcomeCancelled:     "cancelled",
}

// String returns a stable machine-readable name.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Result is the report of a single operation. Book is the affected record
// when one was found.
type Result struct {
	Outcome Outcome
	ID      string
	Book    books.Book
}

// Added builds the report for a freshly added book.
func Added(b books.Book) Result {
	return Result{Outcome: OutcomeAdded, ID: b.ID, Book: b}
}

// Changed reports whether the operation modified the catalog.
func (r Result) Changed() bool {
	switch r.Outcome {
	case OutcomeAdded, OutcomeDeleted, OutcomeStatusChanged:
		return true
	default:
		return false
	}
}

// Message is the human-readable outcome.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeAdded:
		return fmt.Sprintf("Book '%s' added to the catalog with ID %s.", r.Book.Title, r.ID)
	case OutcomeDeleted:
		return fmt.Sprintf("Book with ID %s removed from the catalog.", r.ID)
	case OutcomeStatusChanged:
		return fmt.Sprintf("Status of book '%s' changed to '%s'.", r.Book.Title, r.Book.Status)
	case OutcomeNotFound:
		return fmt.Sprintf("Book with ID %s not found.", r.ID)
	case OutcomeUnchanged:
		return fmt.Sprintf("Book '%s' already has status '%s'.", r.Book.Title, r.Book.Status)
	case OutcomeCancelled:
		return fmt.Sprintf("Deletion of book '%s' cancelled.", r.Book.Title)
	default:
		return ""
	}
}
