package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the validation tool.
type Config struct {
	// Quote endpoint and fetch behavior
	APIBaseURL            string `mapstructure:"api_base_url"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds"`
	MaxRetries            int    `mapstructure:"max_retries"`
	RetryDelaySeconds     int    `mapstructure:"retry_delay_seconds"`

	// Defaults applied when the CLI flags are not given
	DefaultCoins    string `mapstructure:"default_coins"`
	DefaultCurrency string `mapstructure:"default_currency"`
	OutputFormat    string `mapstructure:"output_format"`

	// Where the run log and report files go
	LogDir string `mapstructure:"log_dir"`
}

// Timeout returns the per-attempt request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// RetryDelay returns the fixed delay between retry attempts
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// Load reads configuration from environment variables and an optional config
// file. Environment variables take precedence over config file values.
//
// Expected environment variables (all optional):
//   - API_BASE_URL
//   - REQUEST_TIMEOUT_SECONDS
//   - MAX_RETRIES
//   - RETRY_DELAY_SECONDS
//   - DEFAULT_COINS
//   - DEFAULT_CURRENCY
//   - OUTPUT_FORMAT
//   - LOG_DIR
//
// path, when non-empty, names an explicit config file; otherwise config.yaml
// is looked up in . and $HOME/.apivalidation.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("api_base_url", "https://api.coingecko.com/api/v3/simple/price")
	v.SetDefault("request_timeout_seconds", 10)
	v.SetDefault("max_retries", 3)
	v.SetDefault("retry_delay_seconds", 2)
	v.SetDefault("default_coins", "bitcoin,ethereum")
	v.SetDefault("default_currency", "usd")
	v.SetDefault("output_format", "json")
	v.SetDefault("log_dir", "logs")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.apivalidation")

		// Read config file (ignore if not found)
		_ = v.ReadInConfig()
	}

	// Bind environment variables
	v.BindEnv("api_base_url", "API_BASE_URL")
	v.BindEnv("request_timeout_seconds", "REQUEST_TIMEOUT_SECONDS")
	v.BindEnv("max_retries", "MAX_RETRIES")
	v.BindEnv("retry_delay_seconds", "RETRY_DELAY_SECONDS")
	v.BindEnv("default_coins", "DEFAULT_COINS")
	v.BindEnv("default_currency", "DEFAULT_CURRENCY")
	v.BindEnv("output_format", "OUTPUT_FORMAT")
	v.BindEnv("log_dir", "LOG_DIR")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate
	var invalid []string
	if config.APIBaseURL == "" {
		invalid = append(invalid, "api_base_url must not be empty")
	}
	if config.RequestTimeoutSeconds <= 0 {
		invalid = append(invalid, "request_timeout_seconds must be positive")
	}
	if config.MaxRetries < 0 {
		invalid = append(invalid, "max_retries must not be negative")
	}
	if config.RetryDelaySeconds < 0 {
		invalid = append(invalid, "retry_delay_seconds must not be negative")
	}
	if config.OutputFormat != "json" && config.OutputFormat != "summary" {
		invalid = append(invalid, fmt.Sprintf("output_format %q must be json or summary", config.OutputFormat))
	}
	if config.LogDir == "" {
		invalid = append(invalid, "log_dir must not be empty")
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(invalid, ", "))
	}

	return config, nil
}
