package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultAPIURL = "http://localhost:8080/api"

type Config struct {
	APIURL         string
	StateDir       string
	DBPath         string
	RequestTimeout time.Duration
	LogLevel       string

	// ClearSessionOnAuthError controls whether a 401/403 response wipes the
	// stored credentials. Off by default so in-progress form state survives
	// an expired token.
	ClearSessionOnAuthError bool
}

type fileConfig struct {
	APIURL                  string `yaml:"api_url"`
	RequestTimeoutSeconds   int    `yaml:"request_timeout_seconds"`
	LogLevel                string `yaml:"log_level"`
	ClearSessionOnAuthError bool   `yaml:"clear_session_on_auth_error"`
}

// New resolves configuration in order: explicit apiURL argument, environment
// (with .env loaded if present), config.yaml in the state dir, defaults.
func New(stateDir, apiURL string) (Config, error) {
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		stateDir = filepath.Join(home, ".fitfusion")
	}

	_ = godotenv.Load()

	cfg := Config{
		APIURL:         defaultAPIURL,
		StateDir:       stateDir,
		DBPath:         filepath.Join(stateDir, "cache.db"),
		RequestTimeout: 30 * time.Second,
		LogLevel:       "info",
	}

	if err := cfg.applyFile(filepath.Join(stateDir, "config.yaml")); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()

	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if cfg.APIURL == "" {
		return Config{}, fmt.Errorf("api url is required")
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if fc.APIURL != "" {
		c.APIURL = fc.APIURL
	}
	if fc.RequestTimeoutSeconds > 0 {
		c.RequestTimeout = time.Duration(fc.RequestTimeoutSeconds) * time.Second
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	c.ClearSessionOnAuthError = fc.ClearSessionOnAuthError
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FITFUSION_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("FITFUSION_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("FITFUSION_CLEAR_SESSION_ON_AUTH_ERROR"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ClearSessionOnAuthError = parsed
		}
	}
}
