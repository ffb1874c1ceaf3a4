package appcontext

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/cmd/notify"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/cmd/prompt"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Mock provides a mock implementation of Interface for testing.
// A nil function field falls back to a default built from In, Out and Format.
type Mock struct {
	CatalogFunc  func() (*catalog.Catalog, error)
	PrompterFunc func() *prompt.Prompter
	NotifierFunc func() *notify.Notifier
	LoggerFunc   func() *zerolog.Logger

	In      io.Reader
	Out     io.Writer
	Format  string
	Release string

	prompter *prompt.Prompter
}

// NewMock returns a Mock over c that reads answers from in and writes to out
// in the given format.
func NewMock(c *catalog.Catalog, in string, out io.Writer, format string) *Mock {
	return &Mock{
		CatalogFunc: func() (*catalog.Catalog, error) { return c, nil },
		In:          strings.NewReader(in),
		Out:         out,
		Format:      format,
	}
}

// Catalog returns the catalog from CatalogFunc, or nil.
func (m *Mock) Catalog() (*catalog.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return nil, nil
}

// Prompter returns a prompter over In and Out. The same instance is reused
// so buffered input survives across calls.
func (m *Mock) Prompter() *prompt.Prompter {
	if m.PrompterFunc != nil {
		return m.PrompterFunc()
	}
	if m.prompter == nil {
		in := m.In
		if in == nil {
			in = strings.NewReader("")
		}
		m.prompter = prompt.New(in, m.writer())
	}
	return m.prompter
}

// Notifier returns a colorless notifier writing to Out.
func (m *Mock) Notifier() *notify.Notifier {
	if m.NotifierFunc != nil {
		return m.NotifierFunc()
	}
	return notify.New(notify.Config{
		OutputFormat: output.DetectFormat(m.OutputFormat()),
		Writer:       m.writer(),
	})
}

// Logger returns a no-op logger unless LoggerFunc is set.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns Format, defaulting to table.
func (m *Mock) OutputFormat() string {
	if m.Format == "" {
		return string(output.FormatTable)
	}
	return m.Format
}

// Version returns Release or "test".
func (m *Mock) Version() string {
	if m.Release == "" {
		return "test"
	}
	return m.Release
}

func (m *Mock) writer() io.Writer {
	if m.Out == nil {
		return io.Discard
	}
	return m.Out
}

var _ Interface = (*Mock)(nil)
