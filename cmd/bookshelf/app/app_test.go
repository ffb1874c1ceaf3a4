package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/store"
)

func newTestApp(t *testing.T, file, input string, opts ...Option) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	config := &Config{File: file, Backend: "file", LogOutput: "discard", NoColor: true}
	opts = append([]Option{WithConfig(config), WithIO(strings.NewReader(input), &out)}, opts...)

	app, err := New("1.0.0", "abc123", "2024-01-01", "test", opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { _ = app.Shutdown(context.Background()) })
	return app, &out
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, _ := newTestApp(t, filepath.Join(t.TempDir(), "books.json"), "")

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_Catalog_Singleton verifies Catalog() loads once.
func TestApp_Catalog_Singleton(t *testing.T) {
	mem := store.NewMemory()
	app, _ := newTestApp(t, "unused.json", "", WithStore(mem))

	c1, err := app.Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	c2, err := app.Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed on second call: %v", err)
	}

	if c1 != c2 {
		t.Error("Catalog() returned different instances")
	}
	if mem.Loads() != 1 {
		t.Errorf("Loads() = %d, want 1", mem.Loads())
	}
}

// TestApp_Execute_Flow runs the reference scenario through the CLI.
func TestApp_Execute_Flow(t *testing.T) {
	file := filepath.Join(t.TempDir(), "books.json")
	ctx := context.Background()

	steps := []struct {
		args  []string
		input string
		want  string
	}{
		{[]string{"add", "1984", "George Orwell", "1949"}, "", "added to the catalog with ID 1"},
		{[]string{"status", "1", "borrowed"}, "", "changed to 'borrowed'"},
		{[]string{"status", "1", "borrowed"}, "", "already has status 'borrowed'"},
		{[]string{"search", "author", "Orwell", "-o", "table"}, "", "George Orwell"},
		{[]string{"rm", "1"}, "yes\n", "removed from the catalog"},
		{[]string{"list", "-o", "table"}, "", "No books in the catalog."},
	}

	for _, step := range steps {
		app, out := newTestApp(t, file, step.input)
		if err := app.Execute(ctx, step.args); err != nil {
			t.Fatalf("%v: %v", step.args, err)
		}
		if !strings.Contains(out.String(), step.want) {
			t.Errorf("%v: output %q does not contain %q", step.args, out.String(), step.want)
		}
	}
}

// TestApp_Execute_FileFlag verifies --file and JSON output.
func TestApp_Execute_FileFlag(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "shelf.yaml")
	ctx := context.Background()

	app, _ := newTestApp(t, filepath.Join(dir, "ignored.json"), "")
	if err := app.Execute(ctx, []string{"--file", file, "add", "Dune", "Frank Herbert", "1965"}); err != nil {
		t.Fatal(err)
	}

	recs, err := store.NewFile(file).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Title != "Dune" {
		t.Fatalf("records = %+v", recs)
	}

	app, out := newTestApp(t, file, "")
	if err := app.Execute(ctx, []string{"list", "--format", "json"}); err != nil {
		t.Fatal(err)
	}
	var got []books.Book
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if len(got) != 1 || got[0].Status != books.StatusAvailable {
		t.Errorf("list = %+v", got)
	}
}

// TestApp_Execute_SQLite verifies the sqlite backend and Shutdown.
func TestApp_Execute_SQLite(t *testing.T) {
	file := filepath.Join(t.TempDir(), "books.db")
	ctx := context.Background()

	app, _ := newTestApp(t, file, "")
	if err := app.Execute(ctx, []string{"--backend", "sqlite", "add", "Emma", "Jane Austen", "1815"}); err != nil {
		t.Fatal(err)
	}
	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	st, err := store.NewSQLite(file)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	recs, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Author != "Jane Austen" {
		t.Errorf("records = %+v", recs)
	}
}

// TestApp_Execute_InvalidFormat verifies --format validation.
func TestApp_Execute_InvalidFormat(t *testing.T) {
	app, _ := newTestApp(t, filepath.Join(t.TempDir(), "books.json"), "")
	if err := app.Execute(context.Background(), []string{"list", "-o", "xml"}); err == nil {
		t.Error("expected error for invalid format")
	}
}

// TestApp_Execute_Version verifies the version command.
func TestApp_Execute_Version(t *testing.T) {
	app, out := newTestApp(t, filepath.Join(t.TempDir(), "books.json"), "")
	if err := app.Execute(context.Background(), []string{"version"}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "bookshelf 1.0.0\n" {
		t.Errorf("version output = %q", got)
	}
}
