package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no credentials in the
// environment.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	for _, name := range []string{
		"TRELLO_API_KEY",
		"TRELLO_TOKEN",
		"TRELLO_API_SECRET",
		"TRELLOGO_TRELLO_API_KEY",
		"TRELLOGO_TRELLO_TOKEN",
		"TRELLOGO_TRELLO_TIMEOUT",
		"TRELLOGO_WEBHOOK_SECRET",
		"TRELLOGO_LOGGING_LEVEL",
		"TRELLOGO_OUTPUT_FORMAT",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("TRELLO_API_KEY", "key-from-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "key-from-env", cfg.Trello.APIKey)
	assert.Empty(t, cfg.Trello.Token)
	assert.Equal(t, "https://api.trello.com/1", cfg.Trello.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Trello.Timeout)
	assert.Equal(t, 5, cfg.Trello.MaxRetries)
	assert.False(t, cfg.Trello.StrictErrors)
	assert.Equal(t, 10.0, cfg.Trello.RequestsPerSecond)
	assert.Equal(t, ":8080", cfg.Webhook.Listen)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "trellogo.yaml")
	writeFile(t, path, `
trello:
  api_key: file-key
  token: file-token
  timeout: 15s
  max_retries: 2
  strict_errors: true
proxy:
  host: proxy.internal
  port: 3128
filter:
  overdue: overdue()
  bugs: hasLabel("bug")
output:
  format: json
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Trello.APIKey)
	assert.Equal(t, "file-token", cfg.Trello.Token)
	assert.Equal(t, 15*time.Second, cfg.Trello.Timeout)
	assert.Equal(t, 2, cfg.Trello.MaxRetries)
	assert.True(t, cfg.Trello.StrictErrors)
	assert.Equal(t, "proxy.internal", cfg.Proxy.Host)
	assert.Equal(t, 3128, cfg.Proxy.Port)
	assert.Equal(t, FilterConfig{
		"overdue": "overdue()",
		"bugs":    `hasLabel("bug")`,
	}, cfg.Filter)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), "trello:\n  api_key: cwd-key\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "cwd-key", cfg.Trello.APIKey)
}

func TestLoadEnvironmentPrecedence(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "trello:\n  api_key: file-key\n  token: file-token\nlogging:\n  level: warn\n")

	t.Setenv("TRELLOGO_TRELLO_API_KEY", "prefixed-key")
	t.Setenv("TRELLO_API_KEY", "plain-key")
	t.Setenv("TRELLO_TOKEN", "plain-token")
	t.Setenv("TRELLOGO_LOGGING_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prefixed-key", cfg.Trello.APIKey)
	assert.Equal(t, "plain-token", cfg.Trello.Token)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "TRELLO_API_KEY=dotenv-key\nTRELLO_TOKEN=dotenv-token\n")

	// Already exported variables win over .env.
	t.Setenv("TRELLO_TOKEN", "exported-token")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dotenv-key", cfg.Trello.APIKey)
	assert.Equal(t, "exported-token", cfg.Trello.Token)
}

func TestLoadErrors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		dir := isolate(t)
		t.Setenv("TRELLO_API_KEY", "key")

		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})

	t.Run("no api key", func(t *testing.T) {
		isolate(t)

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trello.api_key")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "config.yaml")
		writeFile(t, path, "trello: [unterminated\n")

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Trello: TrelloConfig{
				APIKey:            "valid-api-key",
				BaseURL:           "https://api.trello.com/1",
				Timeout:           time.Second,
				MaxRetries:        5,
				RequestsPerSecond: 10,
			},
			Output:  OutputConfig{Format: "table"},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "placeholder api key",
			mutate:  func(c *Config) { c.Trello.APIKey = "your-api-key-here" },
			wantErr: "trello.api_key",
		},
		{
			name:    "empty base url",
			mutate:  func(c *Config) { c.Trello.BaseURL = "" },
			wantErr: "trello.base_url",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Trello.Timeout = 0 },
			wantErr: "trello.timeout",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Trello.MaxRetries = -1 },
			wantErr: "trello.max_retries",
		},
		{
			name:   "zero retries",
			mutate: func(c *Config) { c.Trello.MaxRetries = 0 },
		},
		{
			name:    "negative rate",
			mutate:  func(c *Config) { c.Trello.RequestsPerSecond = -1 },
			wantErr: "trello.requests_per_second",
		},
		{
			name:    "proxy port out of range",
			mutate:  func(c *Config) { c.Proxy.Port = 70000 },
			wantErr: "invalid proxy.port: 70000",
		},
		{
			name:   "trace level",
			mutate: func(c *Config) { c.Logging.Level = "trace" },
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level: verbose",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
		{
			name:   "yaml output",
			mutate: func(c *Config) { c.Output.Format = "yaml" },
		},
		{
			name:    "unknown output",
			mutate:  func(c *Config) { c.Output.Format = "csv" },
			wantErr: "invalid output format: csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
