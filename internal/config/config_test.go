package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Files.Income = "ingresos.csv"
	cfg.Display.Currency = "€"
	cfg.Log.Format = "json"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "expenses.csv", cfg.Files.Expenses)
	assert.Equal(t, "income.csv", cfg.Files.Income)
	assert.Equal(t, "suggestions.csv", cfg.Files.Suggestions)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "$", cfg.Display.Currency)
	require.NoError(t, cfg.Validate())

	files := cfg.LedgerFiles()
	assert.Equal(t, "income.csv", files.Income)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("display:\n  currency: \"£\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "£", cfg.Display.Currency)
	assert.Equal(t, "expenses.csv", cfg.Files.Expenses)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDir_NoFile(t *testing.T) {
	cfg, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("files: [\n"), 0o644))

	_, err := LoadDir(filepath.Dir(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Files.Suggestions = ""
	cfg.Files.Income = cfg.Files.Expenses
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "files.suggestions must not be empty")
	assert.Contains(t, err.Error(), "table files must be distinct")
	assert.Contains(t, err.Error(), `log.format "xml"`)
}

func TestValidate_StableMessage(t *testing.T) {
	cfg := Default()
	cfg.Files.Expenses = ""
	cfg.Files.Income = " "
	cfg.Files.Suggestions = ""
	cfg.Log.Format = "xml"

	want := `invalid config: files.expenses must not be empty; files.income must not be empty; ` +
		`files.suggestions must not be empty; table files must be distinct; log.format "xml" must be console or json`
	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		require.Error(t, err)
		require.Equal(t, want, err.Error())
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "expenses: expenses.csv")
	assert.Contains(t, contents, "level: info")
	assert.Contains(t, contents, "currency:")
}
