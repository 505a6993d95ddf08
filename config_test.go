package authcore

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := validateConfig(defaultConfig()); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}

func TestValidateConfigRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero cooldown TTL", mutate: func(c *Config) { c.RateLimit.CooldownTTL = 0 }},
		{name: "negative counter TTL", mutate: func(c *Config) { c.RateLimit.CounterTTL = -time.Second }},
		{name: "zero status TTL", mutate: func(c *Config) { c.Status.ValueTTL = 0 }},
		{name: "short persistent secret", mutate: func(c *Config) { c.Persistent.SecretLength = 8 }},
		{name: "audit enabled without buffer", mutate: func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.BufferSize = 0
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(&cfg)
			if err := validateConfig(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestCloneConfigCopiesSecret(t *testing.T) {
	cfg := defaultConfig()
	cfg.Session.Secret = []byte("0123456789abcdef0123456789abcdef")

	clone := cloneConfig(cfg)
	clone.Session.Secret[0] = 'X'

	if cfg.Session.Secret[0] != '0' {
		t.Fatal("mutating the clone must not touch the original secret")
	}
}
