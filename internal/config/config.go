// Package config loads the chatbot settings from a YAML file and the
// environment. Values are passed explicitly into the components that use them.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBackendURL is the API server the welcome page talks to.
const DefaultBackendURL = "http://127.0.0.1:8000/"

// Config holds all chatbot configuration.
type Config struct {
	// Base address of the API server. Always ends with "/".
	BackendURL string `yaml:"backend_url"`
	// Per-request deadline for the page fetch.
	Timeout time.Duration `yaml:"timeout"`
	// When set, a non-2xx response is treated as a failed fetch.
	RequireOK bool `yaml:"require_ok"`
	// classic, neon or mono
	Theme string `yaml:"theme"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig configures zap output.
type LogConfig struct {
	File  string `yaml:"file"`  // "-" for stderr
	Level string `yaml:"level"` // debug, info, warn, error
}

// ServerConfig configures the development API server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BackendURL: DefaultBackendURL,
		Timeout:    10 * time.Second,
		Theme:      "classic",
		Log: LogConfig{
			File:  filepath.Join(os.TempDir(), "chatbot.log"),
			Level: "info",
		},
		Server: ServerConfig{Addr: "127.0.0.1:8000"},
	}
}

// Load reads path (if non-empty and present), then applies env overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	cfg.BackendURL = NormalizeURL(cfg.BackendURL)
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("CHATBOT_BACKEND_URL")); v != "" {
		c.BackendURL = v
	}
	if v := strings.TrimSpace(os.Getenv("CHATBOT_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CHATBOT_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := strings.TrimSpace(os.Getenv("CHATBOT_REQUIRE_OK")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CHATBOT_REQUIRE_OK: %w", err)
		}
		c.RequireOK = b
	}
	if v := strings.TrimSpace(os.Getenv("CHATBOT_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("CHATBOT_LOG_FILE")); v != "" {
		c.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("CHATBOT_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("CHATBOT_ADDR")); v != "" {
		c.Server.Addr = v
	}
	return nil
}

// Validate checks the values a component cannot recover from.
func (c Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("backend_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend_url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("backend_url: missing host")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// NormalizeURL makes sure the base URL ends with a slash so that
// "api/hello" can be appended directly.
func NormalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s
}
