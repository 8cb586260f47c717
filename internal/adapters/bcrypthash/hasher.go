// Package bcrypthash implements password hashing with bcrypt.
package bcrypthash

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher derives bcrypt hashes at a fixed cost. The zero value is not
// usable; construct with New.
type Hasher struct {
	cost int
}

// New creates a Hasher. Costs outside bcrypt's supported range fall back to
// bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a bcrypt hash of password. The derivation runs in its own
// goroutine so a high cost factor cannot hold the caller past ctx's deadline;
// an abandoned derivation finishes in the background and is discarded.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		hash []byte
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
		ch <- result{hash: hash, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return "", fmt.Errorf("bcrypt hash: %w", res.err)
		}
		return string(res.hash), nil
	}
}

// Verify reports whether password matches hash. Malformed hashes verify as
// false; callers never learn why a check failed.
func (h *Hasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
