package client

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

const (
	defaultServerURL = "http://localhost:5000"
	defaultTimeout   = 15 * time.Second
	serverEnv        = "POKE_SERVER"
)

// Config holds runtime settings for the terminal client.
type Config struct {
	ServerURL   string
	SessionPath string
	Timeout     time.Duration
}

// LoadDefaults populates c with defaults. POKE_SERVER overrides the server URL.
func (c *Config) LoadDefaults() {
	c.ServerURL = defaultServerURL
	if v := os.Getenv(serverEnv); v != "" {
		c.ServerURL = v
	}
	c.SessionPath = defaultSessionPath()
	c.Timeout = defaultTimeout
}

// LoadConfig applies defaults, then overlays command-line flags from args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fs := pflag.NewFlagSet("poke-client", pflag.ContinueOnError)
	fs.StringVarP(&cfg.ServerURL, "server", "s", cfg.ServerURL, "base URL of the Poké-Explorer API (env "+serverEnv+")")
	fs.StringVar(&cfg.SessionPath, "session", cfg.SessionPath, "file the session is persisted to")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("--server must not be empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg, nil
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".poke-explorer", "session.json")
	}
	return filepath.Join(home, ".poke-explorer", "session.json")
}
