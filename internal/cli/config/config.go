package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultURL = "http://localhost:8080"

	// PathEnv overrides the config file location.
	PathEnv = "MEETUP_CONFIG"

	dirName  = "friend-meetup"
	fileName = "config.json"
)

// Config is what the CLI remembers between runs: the server to talk to
// and, after a login, the session held on it.
type Config struct {
	ServerURL string   `json:"server_url"`
	Session   *Session `json:"session,omitempty"`
}

// Session is the bearer token from POST /auth/login and who it belongs to.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   uint   `json:"user_id"`
}

func Path() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads the config file. A missing file is a fresh, signed-out config.
func Load() (*Config, error) {
	cfg := &Config{}

	p, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", p, err)
		}
	}

	cfg.ServerURL = strings.TrimRight(strings.TrimSpace(cfg.ServerURL), "/")
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultURL
	}
	if cfg.Session != nil && cfg.Session.Token == "" {
		cfg.Session = nil
	}
	return cfg, nil
}

// Save writes cfg readable by the owner only, since it may hold a token.
func Save(cfg *Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o600)
}

func (c *Config) HasToken() bool {
	return c.Session != nil && c.Session.Token != ""
}

func (c *Config) Token() string {
	if c.Session == nil {
		return ""
	}
	return c.Session.Token
}

func (c *Config) SignIn(token, username string, userID uint) {
	c.Session = &Session{Token: token, Username: username, UserID: userID}
}

// SignOut forgets the session but keeps the server URL.
func (c *Config) SignOut() {
	c.Session = nil
}
