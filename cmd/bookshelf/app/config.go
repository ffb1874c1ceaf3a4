package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables, .env files and command-line flags.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Storage
	File    string
	Backend string

	// Logging configuration
	LogLevel    string // explicit level, beats -v/-q
	EnvLogLevel string // LOG_LEVEL, used when nothing else is set
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. BOOKSHELF_* environment variables
//  3. .env files
//  4. Config file (./.bookshelf.yaml or ~/.bookshelf.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. A named file
// that cannot be read is an error; a missing default file is not.
func LoadConfigFile(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("file", constants.DefaultDataFile)
	v.SetDefault("backend", constants.BackendFile)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile == "" {
		configFile = v.GetString("config")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		v.SetConfigName(constants.ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "cannot parse config file", err)
			}
		}
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		File:    v.GetString("file"),
		Backend: v.GetString("backend"),

		LogLevel:    v.GetString("log_level"),
		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   v.GetString("log_format"),
		LogOutput:   v.GetString("log_output"),
	}, nil
}

// UpdateFromFlags copies the flags the user actually set over the loaded
// values, so unset flags never clobber the config file or environment.
func (c *Config) UpdateFromFlags(fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		val := f.Value.String()
		switch f.Name {
		case "verbose":
			c.Verbose = val == "true"
		case "quiet":
			c.Quiet = val == "true"
		case "no-color":
			c.NoColor = val == "true"
		case "format":
			c.Format = val
		case "log-level":
			c.LogLevel = val
		case "file":
			c.File = val
		case "backend":
			c.Backend = val
		}
	})
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are not overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
