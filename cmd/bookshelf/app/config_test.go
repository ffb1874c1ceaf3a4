package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// TestLoadConfig verifies defaults.
func TestLoadConfig(t *testing.T) {
	t.Setenv("BOOKSHELF_FILE", "")
	t.Setenv("BOOKSHELF_BACKEND", "")

	config, err := LoadConfigFile(filepath.Join("testdata", "empty.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigFile() failed: %v", err)
	}

	if config.File != "books.json" {
		t.Errorf("File = %q, want books.json", config.File)
	}
	if config.Backend != "file" {
		t.Errorf("Backend = %q, want file", config.Backend)
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies BOOKSHELF_* loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("BOOKSHELF_FILE", "/tmp/shelf.yaml")
	t.Setenv("BOOKSHELF_BACKEND", "sqlite")
	t.Setenv("BOOKSHELF_FORMAT", "json")
	t.Setenv("BOOKSHELF_VERBOSE", "true")
	t.Setenv("LOG_LEVEL", "warn")

	config, err := LoadConfigFile(filepath.Join("testdata", "empty.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigFile() failed: %v", err)
	}

	if config.File != "/tmp/shelf.yaml" {
		t.Errorf("File = %q, want /tmp/shelf.yaml", config.File)
	}
	if config.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", config.Backend)
	}
	if config.Format != "json" {
		t.Errorf("Format = %q, want json", config.Format)
	}
	if !config.Verbose {
		t.Error("BOOKSHELF_VERBOSE not loaded")
	}
	if config.EnvLogLevel != "warn" {
		t.Errorf("EnvLogLevel = %q, want warn", config.EnvLogLevel)
	}
}

// TestConfig_File verifies values from an explicit config file.
func TestConfig_File(t *testing.T) {
	t.Setenv("BOOKSHELF_FILE", "")
	t.Setenv("BOOKSHELF_BACKEND", "")

	path := filepath.Join(t.TempDir(), "bookshelf.yaml")
	content := "file: library.db\nbackend: sqlite\nno_color: true\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() failed: %v", err)
	}

	if config.File != "library.db" || config.Backend != "sqlite" {
		t.Errorf("got file=%q backend=%q", config.File, config.Backend)
	}
	if !config.NoColor {
		t.Error("no_color not loaded")
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
	if config.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", config.ConfigFile, path)
	}
}

// TestConfig_MissingExplicitFile verifies a named config file must exist.
func TestConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	var cfgErr *errors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %T, want *errors.ConfigError", err)
	}
}

// TestConfig_UpdateFromFlags verifies only changed flags override.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{File: "from-config.json", Backend: "file", Format: "yaml"}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("file", "", "")
	fs.String("backend", "", "")
	fs.String("format", "", "")
	fs.Bool("quiet", false, "")
	fs.Bool("verbose", false, "")
	if err := fs.Parse([]string{"--backend", "sqlite", "--quiet"}); err != nil {
		t.Fatal(err)
	}

	config.UpdateFromFlags(fs)

	if config.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", config.Backend)
	}
	if config.File != "from-config.json" {
		t.Errorf("File = %q, unset flag must not override", config.File)
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %q, unset flag must not override", config.Format)
	}
	if !config.Quiet || config.Verbose {
		t.Errorf("Quiet = %v, Verbose = %v", config.Quiet, config.Verbose)
	}
}
