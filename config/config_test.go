package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

const testConfig = `
listen: 127.0.0.1:9000
handshake_timeout: 5s
rate_limit:
  per_second: 2
  burst: 4
  enabled: true
log_level: debug
accounts:
  - id: 1
    name: "1#1"
    key: 0a0b0c0d
  - id: 2
    name: "2#1"
    key: ff
    banned: true
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worldsockd.yaml")

	if err := os.WriteFile(path, []byte(testConfig), 0o600); err != nil {
		t.Fatalf("failed to write config (%s)", err.Error())
	}

	c, err := Load(path)

	if err != nil {
		t.Fatalf("failed to load config (%s)", err.Error())
	}

	if c.Listen != "127.0.0.1:9000" || c.HandshakeTimeout != 5*time.Second || c.LogLevel != "debug" {
		t.Fatalf("unexpected config %+v", c)
	}

	limit := c.ServerRateLimit()

	if limit.HandshakesPerSecond != rate.Limit(2) || limit.Burst != 4 || !limit.Enabled {
		t.Fatalf("unexpected rate limit %+v", limit)
	}

	accounts, err := c.GameAccounts()

	if err != nil {
		t.Fatalf("failed to convert accounts (%s)", err.Error())
	}

	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}

	if !bytes.Equal(accounts[0].KeyData, []byte{0x0a, 0x0b, 0x0c, 0x0d}) || accounts[0].Banned {
		t.Fatalf("unexpected first account %+v", accounts[0])
	}

	if accounts[1].Name != "2#1" || !accounts[1].Banned {
		t.Fatalf("unexpected second account %+v", accounts[1])
	}
}

func TestDefaults(t *testing.T) {
	c, err := Parse([]byte("{}"))

	if err != nil {
		t.Fatalf("failed to parse empty config (%s)", err.Error())
	}

	defaults := Default()

	if c.Listen != defaults.Listen || c.HandshakeTimeout != defaults.HandshakeTimeout || c.RateLimit != defaults.RateLimit {
		t.Fatalf("empty config differs from defaults: %+v", c)
	}

	if c.HandshakeTimeout <= 0 || c.Listen == "" || c.RateLimit.Enabled || len(c.Accounts) != 0 {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"bad_key":        "accounts: [{name: a, key: zz}]",
		"empty_key":      "accounts: [{name: a}]",
		"no_name":        "accounts: [{key: 00}]",
		"duplicate":      "accounts: [{name: a, key: 00}, {name: a, key: 01}]",
		"negative":       "handshake_timeout: -1s",
		"bad_duration":   "handshake_timeout: soon",
		"negative_burst": "rate_limit: {burst: -1}",
		"nul_in_name":    `accounts: [{name: "a\0b", key: 00}]`,
	}

	for name, document := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(document)); err == nil {
				t.Fatal("invalid config accepted")
			}
		})
	}
}
