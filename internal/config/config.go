package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultURL     = "https://gist.githubusercontent.com/christianpanton/10d65ccef9f29de3acd49d97ed423736/raw/b09563bc0c4b318132c7a738e679d4f984ef0048/kings"
	DefaultTimeout = 30 * time.Second
	DefaultFormat  = FormatText
	DefaultColor   = "auto"
	DefaultLevel   = "info"
)

// Source types.
const (
	SourceHTTP = "http"
	SourceFile = "file"
)

// Output formats.
const (
	FormatText       = "text"
	FormatJSON       = "json"
	FormatPrometheus = "prometheus"
)

// Config is the top-level reignstats configuration.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// SourceConfig describes where the monarch dataset is read from.
type SourceConfig struct {
	// Type is one of: http | file.
	Type string `yaml:"type"`

	// URL is fetched with a GET when Type is "http".
	URL string `yaml:"url"`

	// Path is read when Type is "file".
	Path string `yaml:"path"`

	// Timeout bounds the whole HTTP request. Zero disables the limit.
	Timeout time.Duration `yaml:"timeout"`

	Auth AuthConfig `yaml:"auth"`
	TLS  TLSConfig  `yaml:"tls"`
}

// AuthConfig specifies how requests to the dataset URL are authenticated.
type AuthConfig struct {
	// Mode is one of: apikey | bearer | basic | none.
	Mode string `yaml:"mode"`

	// Header is the HTTP header name the API key is sent in.
	Header string `yaml:"header"`
	// KeyEnv names the environment variable holding the API key.
	KeyEnv string `yaml:"key_env"`

	// TokenEnv names the environment variable holding the bearer token.
	TokenEnv string `yaml:"token_env"`

	Username    string `yaml:"username"`
	PasswordEnv string `yaml:"password_env"`
}

// Key returns the API key value resolved from the environment.
// Returns empty string if KeyEnv is unset or the variable is not found.
func (a AuthConfig) Key() string {
	return lookupEnv(a.KeyEnv)
}

// Token returns the bearer token value resolved from the environment.
func (a AuthConfig) Token() string {
	return lookupEnv(a.TokenEnv)
}

// Password returns the basic-auth password resolved from the environment.
func (a AuthConfig) Password() string {
	return lookupEnv(a.PasswordEnv)
}

func lookupEnv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

// TLSConfig holds TLS dial options for the dataset URL.
type TLSConfig struct {
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
}

// OutputConfig controls how the report is written.
type OutputConfig struct {
	// Format is one of: text | json | prometheus.
	Format string `yaml:"format"`

	// Color is one of: auto | always | never. Only the text format uses it.
	Color string `yaml:"color"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`
}

// SlogLevel maps Level onto a slog.Level. Unknown values map to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads and parses the YAML config file at path. An empty path yields
// the defaults. Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Source: SourceConfig{
			Type:    SourceHTTP,
			URL:     DefaultURL,
			Timeout: DefaultTimeout,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
			Color:  DefaultColor,
		},
		Log: LogConfig{Level: DefaultLevel},
	}
}

// validate checks required fields and enums.
func validate(cfg *Config) error {
	src := cfg.Source
	switch src.Type {
	case SourceHTTP:
		if src.URL == "" {
			return fmt.Errorf("source.url is required for type %q", src.Type)
		}
	case SourceFile:
		if src.Path == "" {
			return fmt.Errorf("source.path is required for type %q", src.Type)
		}
	default:
		return fmt.Errorf("source.type: unknown type %q", src.Type)
	}
	if src.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative")
	}

	switch src.Auth.Mode {
	case "apikey":
		if src.Auth.Header == "" {
			return fmt.Errorf("source.auth.header is required for mode apikey")
		}
	case "bearer", "basic", "none", "":
	default:
		return fmt.Errorf("source.auth: unknown mode %q", src.Auth.Mode)
	}

	switch cfg.Output.Format {
	case FormatText, FormatJSON, FormatPrometheus:
	default:
		return fmt.Errorf("output.format: unknown format %q", cfg.Output.Format)
	}
	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unknown value %q", cfg.Output.Color)
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}
	return nil
}
