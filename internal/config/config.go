// Package config loads RxDesk configuration from the user's config file and
// environment. The config file lives at ~/.rxdesk/config.yaml; a missing file
// is not an error and defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rxdesk/rxdesk/internal/logging"
)

// Environment variable overrides. Each, when set, wins over the config file.
const (
	EnvAPIURL   = "RXDESK_API_URL"
	EnvLogLevel = "RXDESK_LOG_LEVEL"
	EnvLogFile  = "RXDESK_LOG_FILE"
)

// DefaultAPIURL is used when neither flag, env var, nor config file names an
// inventory endpoint.
const DefaultAPIURL = "http://localhost:8080/api/tablets"

// configDirName is the per-user directory holding config.yaml.
const configDirName = ".rxdesk"

// Duration wraps time.Duration so YAML values like "30s" decode.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// APIConfig configures the inventory service client.
type APIConfig struct {
	// URL is the full tablets collection endpoint.
	URL string `yaml:"url"`
	// Timeout bounds a single fetch. Zero means no timeout: the request
	// waits for the transport to resolve.
	Timeout Duration `yaml:"timeout"`
}

// LoggingConfig configures the zerolog setup.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the full RxDesk configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when no file and no overrides exist.
func Default() *Config {
	return &Config{
		API: APIConfig{
			URL:     DefaultAPIURL,
			Timeout: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Path returns the config file location under the user's home directory.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName, "config.yaml"), nil
}

// Load reads the config file at path, applies environment overrides, and
// returns the result. A missing file yields defaults; a malformed file is an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file: defaults plus env overrides.
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		if cfg.API.URL == "" {
			cfg.API.URL = DefaultAPIURL
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadDefault loads the config from the standard per-user location.
func LoadDefault() (*Config, error) {
	path, err := Path()
	if err != nil {
		// No home directory: fall back to defaults plus env.
		cfg := Default()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return Load(path)
}

func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.API.URL = url
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if file := os.Getenv(EnvLogFile); file != "" {
		cfg.Logging.File = file
	}
}

// ToLoggingConfig converts the YAML logging section into the logging
// package's constructor input.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  l.Level,
		Format: l.Format,
		File:   l.File,
	}
}
