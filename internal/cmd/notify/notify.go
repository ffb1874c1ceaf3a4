// Package notify is the CLI report channel: every catalog outcome and
// user-facing status line goes through a Notifier.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
)

// Notifier writes alerts to a single destination.
type Notifier struct {
	alertWriter alerts.Writer
	config      Config
}

// Config controls notification behavior.
type Config struct {
	OutputFormat output.Format // table, json or yaml
	Writer       io.Writer     // default: stdout
	UseColor     bool
	Quiet        bool // suppress info-level alerts
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		OutputFormat: output.FormatTable,
		Writer:       os.Stdout,
		UseColor:     true,
	}
}

// New creates a new Notifier with the given configuration.
func New(config Config) *Notifier {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	w := alerts.NewFormatWriter(config.Writer, config.OutputFormat)
	if !config.UseColor {
		w.WithColor(false)
	}
	return &Notifier{alertWriter: w, config: config}
}

// Alert sends an alert notification.
func (n *Notifier) Alert(alert *alerts.Alert) error {
	if n.config.Quiet && alert.Level == alerts.LevelInfo {
		return nil
	}
	if err := n.alertWriter.WriteAlert(alert); err != nil {
		return fmt.Errorf("failed to write alert: %w", err)
	}
	return nil
}

// Result reports the outcome of a catalog operation.
func (n *Notifier) Result(r catalog.Result) error {
	return n.Alert(alerts.FromResult(r))
}

// Success sends a success alert.
func (n *Notifier) Success(message string) error {
	return n.Alert(alerts.NewSuccess(message))
}

// Error sends an error alert.
func (n *Notifier) Error(message string, err error) error {
	return n.Alert(alerts.NewError(message).WithError(err))
}

// Warning sends a warning alert.
func (n *Notifier) Warning(message string) error {
	return n.Alert(alerts.NewWarning(message))
}

// Info sends an info alert.
func (n *Notifier) Info(message string) error {
	return n.Alert(alerts.NewInfo(message))
}
