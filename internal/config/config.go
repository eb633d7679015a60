// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. LETTER_SERVER_PORT.
const EnvPrefix = "LETTER"

// Config is the merged configuration: defaults, then an optional YAML or JSON
// file, then LETTER_* environment variables.
type Config struct {
	Log       LogConfig       `mapstructure:"log" json:"log"`
	Server    ServerConfig    `mapstructure:"server" json:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" json:"rate_limit"`
	Letter    LetterConfig    `mapstructure:"letter" json:"letter"`
	Print     PrintConfig     `mapstructure:"print" json:"print"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level       string `mapstructure:"level" json:"level"`
	Development bool   `mapstructure:"development" json:"development"`
	Verbose     bool   `mapstructure:"verbose" json:"verbose"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port            int           `mapstructure:"port" json:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" json:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" json:"max_body_bytes"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" json:"allowed_origins"`
}

// RateLimitConfig configures the per-client token buckets.
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled" json:"enabled"`
	Limit           int           `mapstructure:"limit" json:"limit"`
	Window          time.Duration `mapstructure:"window" json:"window"`
	Burst           int           `mapstructure:"burst" json:"burst"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" json:"cleanup_interval"`
	Whitelist       []string      `mapstructure:"whitelist" json:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist" json:"blacklist"`
}

// LetterConfig holds composition and rendering defaults.
type LetterConfig struct {
	// HTMLTemplate overrides the embedded html template.
	HTMLTemplate string `mapstructure:"html_template" json:"html_template"`
	// LaTeXTemplate overrides the embedded latex template.
	LaTeXTemplate string `mapstructure:"latex_template" json:"latex_template"`
	// Format is the default output format of the generate command: text or json.
	Format string `mapstructure:"format" json:"format"`
	// BatchLimit caps letters per batch; 0 means unlimited.
	BatchLimit int `mapstructure:"batch_limit" json:"batch_limit"`
}

// TemplateFor returns the configured template path for a render format,
// or "" when the embedded template applies.
func (c LetterConfig) TemplateFor(format string) string {
	switch format {
	case "html":
		return c.HTMLTemplate
	case "latex":
		return c.LaTeXTemplate
	default:
		return ""
	}
}

// PrintConfig configures headless Chrome PDF export.
type PrintConfig struct {
	Timeout  time.Duration `mapstructure:"timeout" json:"timeout"`
	ExecPath string        `mapstructure:"exec_path" json:"exec_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// defaults alone always decode
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.verbose", false)

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.limit", 120)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.cleanup_interval", "5m")
	v.SetDefault("rate_limit.whitelist", []string{})
	v.SetDefault("rate_limit.blacklist", []string{})

	v.SetDefault("letter.html_template", "")
	v.SetDefault("letter.latex_template", "")
	v.SetDefault("letter.format", "text")
	v.SetDefault("letter.batch_limit", 100)

	v.SetDefault("print.timeout", "30s")
	v.SetDefault("print.exec_path", "")
}

// LoadConfig loads configuration from path (YAML or JSON, chosen by extension)
// layered over defaults and under LETTER_* environment variables.
// An empty path skips the file layer.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var validFormats = map[string]bool{"text": true, "json": true}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	var errs []error

	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Errorf("config error: 'log.level' must be one of debug, info, warn, error (got %q)", c.Log.Level))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("config error: 'server.port' must be between 1 and 65535"))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("config error: 'server.max_body_bytes' must be positive"))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Limit <= 0 {
			errs = append(errs, fmt.Errorf("config error: 'rate_limit.limit' must be positive when rate limiting is enabled"))
		}
		if c.RateLimit.Window <= 0 {
			errs = append(errs, fmt.Errorf("config error: 'rate_limit.window' must be positive when rate limiting is enabled"))
		}
		if c.RateLimit.Burst < 0 {
			errs = append(errs, fmt.Errorf("config error: 'rate_limit.burst' must be non-negative"))
		}
	}

	if c.Letter.Format != "" && !validFormats[c.Letter.Format] {
		errs = append(errs, fmt.Errorf("config error: 'letter.format' must be text or json (got %q)", c.Letter.Format))
	}
	if c.Letter.BatchLimit < 0 {
		errs = append(errs, fmt.Errorf("config error: 'letter.batch_limit' must be non-negative"))
	}
	templates := []struct{ key, path string }{
		{"letter.html_template", c.Letter.HTMLTemplate},
		{"letter.latex_template", c.Letter.LaTeXTemplate},
	}
	for _, tmpl := range templates {
		if tmpl.path == "" {
			continue
		}
		if _, err := os.Stat(tmpl.path); os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("config error: '%s' template file not found: %s", tmpl.key, tmpl.path))
		}
	}

	if c.Print.Timeout < 0 {
		errs = append(errs, fmt.Errorf("config error: 'print.timeout' must be non-negative"))
	}

	return errors.Join(errs...)
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// Bools are never merged since unset and false cannot be told apart, and
// neither is letter.batch_limit, where 0 means unlimited.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Log.Level == "" {
		result.Log.Level = defaults.Log.Level
	}

	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if result.Server.ReadTimeout == 0 {
		result.Server.ReadTimeout = defaults.Server.ReadTimeout
	}
	if result.Server.WriteTimeout == 0 {
		result.Server.WriteTimeout = defaults.Server.WriteTimeout
	}
	if result.Server.ShutdownTimeout == 0 {
		result.Server.ShutdownTimeout = defaults.Server.ShutdownTimeout
	}
	if result.Server.MaxBodyBytes == 0 {
		result.Server.MaxBodyBytes = defaults.Server.MaxBodyBytes
	}
	if len(result.Server.AllowedOrigins) == 0 {
		result.Server.AllowedOrigins = defaults.Server.AllowedOrigins
	}

	if result.RateLimit.Limit == 0 {
		result.RateLimit.Limit = defaults.RateLimit.Limit
	}
	if result.RateLimit.Window == 0 {
		result.RateLimit.Window = defaults.RateLimit.Window
	}
	if result.RateLimit.Burst == 0 {
		result.RateLimit.Burst = defaults.RateLimit.Burst
	}
	if result.RateLimit.CleanupInterval == 0 {
		result.RateLimit.CleanupInterval = defaults.RateLimit.CleanupInterval
	}

	if result.Letter.HTMLTemplate == "" {
		result.Letter.HTMLTemplate = defaults.Letter.HTMLTemplate
	}
	if result.Letter.LaTeXTemplate == "" {
		result.Letter.LaTeXTemplate = defaults.Letter.LaTeXTemplate
	}
	if result.Letter.Format == "" {
		result.Letter.Format = defaults.Letter.Format
	}

	if result.Print.Timeout == 0 {
		result.Print.Timeout = defaults.Print.Timeout
	}
	if result.Print.ExecPath == "" {
		result.Print.ExecPath = defaults.Print.ExecPath
	}

	return result
}
