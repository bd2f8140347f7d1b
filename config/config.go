package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/server"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
	Enabled   bool    `yaml:"enabled"`
}

type AccountConfig struct {
	ID   uint32 `yaml:"id"`
	Name string `yaml:"name"`
	// Hex encoded authentication secret
	Key    string `yaml:"key"`
	Banned bool   `yaml:"banned"`
}

type ServerConfig struct {
	Listen           string          `yaml:"listen"`
	HandshakeTimeout time.Duration   `yaml:"handshake_timeout"`
	RateLimit        RateLimitConfig `yaml:"rate_limit"`
	LogLevel         string          `yaml:"log_level"`
	Accounts         []AccountConfig `yaml:"accounts"`
}

func Load(path string) (ServerConfig, error) {
	b, err := os.ReadFile(path)

	if err != nil {
		return ServerConfig{}, err
	}

	return Parse(b)
}

// Parse decodes a YAML server configuration and fills in defaults.
func Parse(b []byte) (ServerConfig, error) {
	var c ServerConfig

	if err := yaml.Unmarshal(b, &c); err != nil {
		return ServerConfig{}, err
	}

	c.applyDefaults()

	if err := c.validate(); err != nil {
		return ServerConfig{}, err
	}

	return c, nil
}

// Default returns the configuration used when no file is given.
func Default() ServerConfig {
	var c ServerConfig
	c.applyDefaults()

	return c
}

func (c *ServerConfig) applyDefaults() {
	if c.Listen == "" {
		c.Listen = "0.0.0.0:8085"
	}

	if c.HandshakeTimeout == 0 {
		c.HandshakeTimeout = server.DefaultHandshakeTimeout
	}

	if c.RateLimit.PerSecond == 0 {
		c.RateLimit.PerSecond = 5
	}

	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c ServerConfig) validate() error {
	if c.HandshakeTimeout < 0 {
		return errors.New("handshake_timeout must not be negative")
	}

	if c.RateLimit.PerSecond < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate_limit values must not be negative")
	}

	names := make(map[string]bool, len(c.Accounts))

	for index, account := range c.Accounts {
		if account.Name == "" {
			return fmt.Errorf("account #%d has no name", index+1)
		}

		if names[account.Name] {
			return fmt.Errorf("account '%s' is listed twice", account.Name)
		}

		names[account.Name] = true

		if _, err := commons.NameBytes(account.Name); err != nil {
			return fmt.Errorf("account %q: %w", account.Name, err)
		}

		if _, err := account.secret(); err != nil {
			return err
		}
	}

	return nil
}

func (account AccountConfig) secret() ([]byte, error) {
	key, err := hex.DecodeString(account.Key)

	if err != nil {
		return nil, fmt.Errorf("account '%s' has an invalid key: %w", account.Name, err)
	}

	if len(key) == 0 {
		return nil, fmt.Errorf("account '%s' has no key", account.Name)
	}

	return key, nil
}

// GameAccounts converts the configured accounts for the server's account store.
func (c ServerConfig) GameAccounts() ([]*server.GameAccount, error) {
	accounts := make([]*server.GameAccount, 0, len(c.Accounts))

	for _, account := range c.Accounts {
		key, err := account.secret()

		if err != nil {
			return nil, err
		}

		accounts = append(accounts, &server.GameAccount{
			ID:      account.ID,
			Name:    account.Name,
			KeyData: key,
			Banned:  account.Banned,
		})
	}

	return accounts, nil
}

// ServerRateLimit converts the rate limit section for the server.
func (c ServerConfig) ServerRateLimit() *server.RateLimitConfig {
	return &server.RateLimitConfig{
		HandshakesPerSecond: rate.Limit(c.RateLimit.PerSecond),
		Burst:               c.RateLimit.Burst,
		Enabled:             c.RateLimit.Enabled,
	}
}
