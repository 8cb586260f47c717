package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":3000" {
		t.Errorf("expected default addr :3000, got %q", cfg.HTTP.Addr)
	}
	if cfg.Auth.SessionBackend != SessionBackendMemory {
		t.Errorf("expected memory session backend, got %q", cfg.Auth.SessionBackend)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("expected bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("expected default db port 5432, got %d", cfg.Postgres.Port)
	}
}

func TestSessionBackend_UnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    SessionBackend
		expectError bool
	}{
		{input: "memory", expected: SessionBackendMemory},
		{input: "redis", expected: SessionBackendRedis},
		{input: "REDIS", expected: SessionBackendRedis},
		{input: "postgres", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var b SessionBackend
			err := b.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, b)
			}
		})
	}
}

func TestAuthConfig_Sanitize(t *testing.T) {
	cfg := AuthConfig{BcryptCost: 99, SessionTTL: -time.Hour, OperationTimeout: 0}
	cfg.Sanitize()

	if cfg.BcryptCost != 10 {
		t.Errorf("expected cost clamped to 10, got %d", cfg.BcryptCost)
	}
	if cfg.SessionTTL != 720*time.Hour {
		t.Errorf("expected session TTL reset, got %v", cfg.SessionTTL)
	}
	if cfg.OperationTimeout != 5*time.Second {
		t.Errorf("expected operation timeout reset, got %v", cfg.OperationTimeout)
	}
}

func TestMailConfig_To(t *testing.T) {
	c := MailConfig{Username: "owner@example.com"}
	if c.To() != "owner@example.com" {
		t.Errorf("expected fallback to username, got %q", c.To())
	}
	c.Recipient = "inbox@example.com"
	if c.To() != "inbox@example.com" {
		t.Errorf("expected explicit recipient, got %q", c.To())
	}
}
