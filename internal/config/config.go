package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bueno-budget/bueno/internal/ledger"
)

// FileName is the config file looked up in the data directory.
const FileName = "bueno.yaml"

// Environment variables that override the config file.
const (
	EnvDir       = "BUENO_DIR"
	EnvLogLevel  = "BUENO_LOG_LEVEL"
	EnvLogFormat = "BUENO_LOG_FORMAT"
)

// Config represents bueno.yaml.
type Config struct {
	Files   FilesConfig   `yaml:"files"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

// FilesConfig names the table files, relative to the data directory.
type FilesConfig struct {
	Expenses    string `yaml:"expenses"`
	Income      string `yaml:"income"`
	Suggestions string `yaml:"suggestions"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // "console" or "json"
}

// DisplayConfig controls how amounts are shown.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// Load reads a bueno.yaml file from disk. Fields missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadDir reads <dir>/bueno.yaml, or returns defaults if there is none.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no bueno.yaml exists.
func Default() *Config {
	files := ledger.DefaultFiles()
	return &Config{
		Files: FilesConfig{
			Expenses:    files.Expenses,
			Income:      files.Income,
			Suggestions: files.Suggestions,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Display: DisplayConfig{
			Currency: "$",
		},
	}
}

// LedgerFiles converts the files section for the ledger service.
func (c *Config) LedgerFiles() ledger.Files {
	return ledger.Files{
		Expenses:    c.Files.Expenses,
		Income:      c.Files.Income,
		Suggestions: c.Files.Suggestions,
	}
}

// Validate reports unusable settings.
func (c *Config) Validate() error {
	var problems []string
	for _, f := range []struct{ name, value string }{
		{"files.expenses", c.Files.Expenses},
		{"files.income", c.Files.Income},
		{"files.suggestions", c.Files.Suggestions},
	} {
		if strings.TrimSpace(f.value) == "" {
			problems = append(problems, f.name+" must not be empty")
		}
	}
	if c.Files.Expenses == c.Files.Income || c.Files.Expenses == c.Files.Suggestions || c.Files.Income == c.Files.Suggestions {
		problems = append(problems, "table files must be distinct")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q must be console or json", c.Log.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// LoadEnv loads a .env file from the working directory, if present. Variables
// already set in the environment are not overridden.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides logging settings from BUENO_LOG_* variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
}
