package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Trello  TrelloConfig  `mapstructure:"trello"`
	Proxy   ProxyConfig   `mapstructure:"proxy"`
	Webhook WebhookConfig `mapstructure:"webhook"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TrelloConfig holds Trello API credentials and client behaviour
type TrelloConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	Token             string        `mapstructure:"token"`
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	MaxRetries        int           `mapstructure:"max_retries"`
	StrictErrors      bool          `mapstructure:"strict_errors"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
}

// ProxyConfig holds the optional HTTP proxy used for API calls
type ProxyConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// WebhookConfig configures the callback receiver started by "serve"
type WebhookConfig struct {
	Listen      string `mapstructure:"listen"`
	Secret      string `mapstructure:"secret"`
	CallbackURL string `mapstructure:"callback_url"`
}

// FilterConfig contains named card filter expressions
type FilterConfig map[string]string

// OutputConfig selects how commands print results
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
