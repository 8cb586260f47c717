package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SessionBackend selects which session store implementation is used.
type SessionBackend string

const (
	// SessionBackendMemory keeps sessions in process memory. Sessions are
	// valid until explicit logout or process restart.
	SessionBackendMemory SessionBackend = "memory"
	// SessionBackendRedis stores sessions in Redis with a TTL.
	SessionBackendRedis SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "memory", "redis":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: memory, redis)", v)
	}
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// SessionBackend determines where sessions are persisted.
	SessionBackend SessionBackend `env:"SESSION_BACKEND" envDefault:"memory"`

	// SessionTTL is how long an issued session stays valid. There is no
	// refresh; the value only bounds abandoned sessions.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// OperationTimeout bounds hashing and persistence calls made during
	// registration and login.
	OperationTimeout time.Duration `env:"AUTH_OPERATION_TIMEOUT" envDefault:"5s"`
}

// Sanitize clamps auth configuration to safe bounds.
func (c *AuthConfig) Sanitize() {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		c.BcryptCost = bcrypt.DefaultCost
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 720 * time.Hour
	}
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = 5 * time.Second
	}
}
