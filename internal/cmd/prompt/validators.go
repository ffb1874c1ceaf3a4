package prompt

import (
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Validator returns nil when the answer is acceptable.
type Validator func(answer string) error

// NotEmpty rejects blank answers.
func NotEmpty(field string) Validator {
	return func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return errors.NewValidationError(field, answer, field+" cannot be empty")
		}
		return nil
	}
}

// Year accepts decimal digits no greater than the current calendar year.
func Year() Validator {
	return YearUpTo(time.Now().Year())
}

// YearUpTo accepts decimal digits no greater than limit.
func YearUpTo(limit int) Validator {
	return func(answer string) error {
		s := strings.TrimSpace(answer)
		n, err := strconv.Atoi(s)
		if !digits(s) || err != nil || n > limit {
			return errors.NewValidationError("year", answer,
				"year must be a number not greater than "+strconv.Itoa(limit))
		}
		return nil
	}
}

// ID accepts positive decimal integers.
func ID() Validator {
	return func(answer string) error {
		s := strings.TrimSpace(answer)
		n, err := strconv.Atoi(s)
		if !digits(s) || err != nil || n <= 0 {
			return errors.NewValidationError("id", answer, "ID must be a positive integer")
		}
		return nil
	}
}

// Status accepts any spelling books.ParseStatus knows.
func Status() Validator {
	return func(answer string) error {
		_, err := books.ParseStatus(answer)
		return err
	}
}

// Field accepts any spelling books.ParseField knows.
func Field() Validator {
	return func(answer string) error {
		_, err := books.ParseField(answer)
		return err
	}
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
