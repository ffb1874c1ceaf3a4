// Package alerts provides a structured system for status notifications.
package alerts

import (
	"fmt"

	"github.com/agentstation/bookshelf/pkg/catalog"
)

// Alert represents a single line on the report channel.
type Alert struct {
	Level   Level
	Message string
	Outcome string
	ID      string
	Err     error
}

// New creates a new alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{
		Level:   level,
		Message: message,
	}
}

// NewError creates a new error alert.
func NewError(message string) *Alert {
	return New(LevelError, message)
}

// NewWarning creates a new warning alert.
func NewWarning(message string) *Alert {
	return New(LevelWarning, message)
}

// NewInfo creates a new info alert.
func NewInfo(message string) *Alert {
	return New(LevelInfo, message)
}

// NewSuccess creates a new success alert.
func NewSuccess(message string) *Alert {
	return New(LevelSuccess, message)
}

// FromResult maps a catalog outcome onto an alert.
func FromResult(r catalog.Result) *Alert {
	a := New(levelFor(r.Outcome), r.Message())
	a.Outcome = r.Outcome.String()
	a.ID = r.ID
	return a
}

func levelFor(o catalog.Outcome) Level {
	switch o {
	case catalog.OutcomeAdded, catalog.OutcomeDeleted, catalog.OutcomeStatusChanged:
		return LevelSuccess
	case catalog.OutcomeNotFound:
		return LevelWarning
	default:
		return LevelInfo
	}
}

// WithError adds an underlying error to the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// String returns a string representation of the alert.
func (a *Alert) String() string {
	message := fmt.Sprintf("%s %s", a.Level.Icon(), a.Message)
	if a.Err != nil {
		message += fmt.Sprintf(": %v", a.Err)
	}
	return message
}

// Writer handles alert output to different formats and destinations.
type Writer interface {
	WriteAlert(alert *Alert) error
}
