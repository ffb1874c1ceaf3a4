package catalog

import "github.com/agentstation/bookshelf/pkg/books"

// Prompter asks the user a question and returns the raw reply.
// Returning an error that matches errors.ErrCanceled counts as a "no".
type Prompter interface {
	Prompt(question string) (string, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(question string) (string, error)

// Prompt implements Prompter.
func (f PrompterFunc) Prompt(question string) (string, error) {
	return f(question)
}

// Answer returns a Prompter that always replies with answer.
func Answer(answer string) Prompter {
	return PrompterFunc(func(string) (string, error) { return answer, nil })
}

// declineAll is used when no prompter is configured.
type declineAll struct{}

func (declineAll) Prompt(string) (string, error) { return "no", nil }

func confirmQuestion(b books.Book) string {
	return "Delete book '" + b.Title + "' with ID " + b.ID + "? (yes/no)"
}
