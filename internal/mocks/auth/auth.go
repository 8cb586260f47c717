package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkwell-dev/inkwell/internal/data"
	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	"github.com/inkwell-dev/inkwell/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.PasswordHasher     = (*MockPasswordHasher)(nil)
	_ ports.CredentialVerifier = (*MockCredentialVerifier)(nil)
	_ ports.SessionStore       = (*MemorySessionStore)(nil)
	_ ports.Mailer             = (*MockMailer)(nil)
)

// MockPasswordHasher is a deterministic, instant stand-in for bcrypt.
type MockPasswordHasher struct {
	HashFunc   func(ctx context.Context, password string) (string, error)
	VerifyFunc func(hash, password string) bool

	// HashErr forces Hash to fail, simulating a broken hasher.
	HashErr error
}

func (m *MockPasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(ctx, password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Verify(hash, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, password)
	}
	return hash == "hashed:"+password
}

// MockCredentialVerifier returns a canned user or error.
type MockCredentialVerifier struct {
	VerifyFunc func(ctx context.Context, email, password string) (model.User, error)

	User model.User
	Err  error

	// Calls records each (email, password) pair Verify saw.
	Calls [][2]string
}

func (m *MockCredentialVerifier) Verify(ctx context.Context, email, password string) (model.User, error) {
	m.Calls = append(m.Calls, [2]string{email, password})
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, password)
	}
	if m.Err != nil {
		return model.User{}, m.Err
	}
	return m.User, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	sessions map[string]domainauth.Session

	// SaveErr forces Save to fail.
	SaveErr error
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	delete(m.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (m *MemorySessionStore) Len() int { return len(m.sessions) }

// MemoryUserStore is an in-memory user store for unit tests. It reproduces
// the repository's conflict semantics on duplicate emails.
type MemoryUserStore struct {
	users  map[string]model.User // keyed by email exactly as submitted
	nextID int

	// CreateErr forces Create to fail.
	CreateErr error
}

// NewMemoryUserStore creates a new in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]model.User)}
}

func (m *MemoryUserStore) Create(_ context.Context, params model.CreateUserParams) (*model.User, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if _, exists := m.users[params.Email]; exists {
		return nil, data.ErrEmailExists
	}
	m.nextID++
	user := model.User{
		ID:           fmt.Sprintf("user-%d", m.nextID),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
		AvatarURL:    params.AvatarURL,
	}
	m.users[params.Email] = user
	return &user, nil
}

func (m *MemoryUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, data.ErrUserNotFound
	}
	return &user, nil
}

// Len reports the number of stored users.
func (m *MemoryUserStore) Len() int { return len(m.users) }

// MockMailer records sent messages.
type MockMailer struct {
	SendFunc func(ctx context.Context, msg model.ContactMessage) error

	Sent []model.ContactMessage
	Err  error
}

func (m *MockMailer) Send(ctx context.Context, msg model.ContactMessage) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}
