package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "TRELLOGO"
	envFile   = ".env"
)

// Load loads the configuration from file, .env and environment, in
// increasing order of precedence. Without an explicit path a missing
// config file is not an error; the environment alone may be enough.
func Load(configPath string) (*Config, error) {
	loadDotEnv(envFile)

	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvs(v); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "trellogo"))
		}
		v.AddConfigPath("/etc/trellogo/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv exports the variables of path that are not already set
func loadDotEnv(path string) {
	values, err := godotenv.Read(path)
	if err != nil {
		return
	}
	for k, val := range values {
		if _, exists := os.LookupEnv(k); !exists {
			_ = os.Setenv(k, val)
		}
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Trello defaults
	v.SetDefault("trello.api_key", "")
	v.SetDefault("trello.token", "")
	v.SetDefault("trello.base_url", "https://api.trello.com/1")
	v.SetDefault("trello.timeout", 30*time.Second)
	v.SetDefault("trello.max_retries", 5)
	v.SetDefault("trello.strict_errors", false)
	v.SetDefault("trello.requests_per_second", 10.0)

	// Proxy defaults
	v.SetDefault("proxy.host", "")
	v.SetDefault("proxy.port", 0)
	v.SetDefault("proxy.user", "")
	v.SetDefault("proxy.password", "")

	// Webhook defaults
	v.SetDefault("webhook.listen", ":8080")
	v.SetDefault("webhook.secret", "")
	v.SetDefault("webhook.callback_url", "")

	// Output defaults
	v.SetDefault("output.format", "table")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnvs maps the credentials to the names Trello documents besides the
// prefixed TRELLOGO_* variables AutomaticEnv already covers.
func bindEnvs(v *viper.Viper) error {
	aliases := map[string][]string{
		"trello.api_key": {"TRELLOGO_TRELLO_API_KEY", "TRELLO_API_KEY"},
		"trello.token":   {"TRELLOGO_TRELLO_TOKEN", "TRELLO_TOKEN"},
		"webhook.secret": {"TRELLOGO_WEBHOOK_SECRET", "TRELLO_API_SECRET"},
	}

	for key, names := range aliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return err
		}
	}
	return nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Trello.APIKey == "" || cfg.Trello.APIKey == "your-api-key-here" {
		return fmt.Errorf("trello.api_key must be set to a valid API key")
	}

	if cfg.Trello.BaseURL == "" {
		return fmt.Errorf("trello.base_url is required")
	}

	if cfg.Trello.Timeout <= 0 {
		return fmt.Errorf("trello.timeout must be positive")
	}

	if cfg.Trello.MaxRetries < 0 {
		return fmt.Errorf("trello.max_retries must not be negative")
	}

	if cfg.Trello.RequestsPerSecond < 0 {
		return fmt.Errorf("trello.requests_per_second must not be negative")
	}

	if cfg.Proxy.Port < 0 || cfg.Proxy.Port > 65535 {
		return fmt.Errorf("invalid proxy.port: %d", cfg.Proxy.Port)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
		"yaml":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	return nil
}
