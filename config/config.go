// Package config builds the process-wide configuration once at startup.
//
// Precedence, lowest to highest: defaults, the optional YAML config file,
// environment variables (a .env file in the working directory is loaded
// first when present). The resulting Config is passed by reference into the
// server and store; nothing reads ambient environment state after startup.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Transport values accepted by Config.Transport.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config is the process configuration.
type Config struct {
	// Transport selects stdio or http. Fixed for the process lifetime.
	Transport string `yaml:"transport"`
	// HTTPAddr is the listen address for the http transport.
	HTTPAddr string `yaml:"http_addr"`
	// LogLevel is debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`

	GitHub GitHub `yaml:"github"`
}

// GitHub locates the repository file backing the document.
type GitHub struct {
	// Token is never read from the config file, only from the
	// GITHUB_TOKEN environment variable.
	Token  string `yaml:"-"`
	Owner  string `yaml:"owner"`
	Repo   string `yaml:"repo"`
	Path   string `yaml:"path"`
	Branch string `yaml:"branch"`
}

func defaults() *Config {
	return &Config{
		Transport: TransportStdio,
		HTTPAddr:  "127.0.0.1:8080",
		LogLevel:  "info",
		GitHub: GitHub{
			Path:   "macros.json",
			Branch: "main",
		},
	}
}

// Load builds the configuration. path names an optional YAML file; an empty
// path skips the file layer. Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.Transport, "MACRO_TRANSPORT")
	setFromEnv(&cfg.HTTPAddr, "MACRO_HTTP_ADDR")
	setFromEnv(&cfg.LogLevel, "MACRO_LOG_LEVEL")
	setFromEnv(&cfg.GitHub.Token, "GITHUB_TOKEN")
	setFromEnv(&cfg.GitHub.Owner, "MACRO_GITHUB_OWNER")
	setFromEnv(&cfg.GitHub.Repo, "MACRO_GITHUB_REPO")
	setFromEnv(&cfg.GitHub.Path, "MACRO_FILE_PATH")
	setFromEnv(&cfg.GitHub.Branch, "MACRO_BRANCH")
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// Validate reports startup-fatal configuration problems.
func (c *Config) Validate() error {
	if c.Transport != TransportStdio && c.Transport != TransportHTTP {
		return fmt.Errorf("invalid transport %q: must be %s or %s", c.Transport, TransportStdio, TransportHTTP)
	}
	if c.Transport == TransportHTTP && c.HTTPAddr == "" {
		return errors.New("http transport requires a listen address")
	}
	if c.GitHub.Token == "" {
		return errors.New("missing credential: set GITHUB_TOKEN")
	}
	if c.GitHub.Owner == "" || c.GitHub.Repo == "" {
		return errors.New("repository not configured: set owner and repo")
	}
	if c.GitHub.Path == "" {
		return errors.New("document path not configured")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
}
