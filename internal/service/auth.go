package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-dev/inkwell/internal/avatar"
	"github.com/inkwell-dev/inkwell/internal/data"
	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
	"github.com/inkwell-dev/inkwell/internal/ports"
)

const defaultOperationTimeout = 5 * time.Second

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users    UserStore
	Hasher   ports.PasswordHasher
	Verifier ports.CredentialVerifier
	Sessions ports.SessionStore

	// SessionTTL bounds how long a login lasts.
	SessionTTL time.Duration
	// OperationTimeout caps register and login work (hashing plus
	// persistence). Zero means defaultOperationTimeout.
	OperationTimeout time.Duration
}

// AuthService orchestrates registration, login, and session lifecycle.
type AuthService struct {
	users    UserStore
	hasher   ports.PasswordHasher
	verifier ports.CredentialVerifier
	sessions ports.SessionStore

	sessionTTL time.Duration
	opTimeout  time.Duration
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService. When no verifier is supplied
// the store-backed one is used.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	verifier := opts.Verifier
	if verifier == nil {
		verifier = NewStoreVerifier(opts.Users, opts.Hasher)
	}
	timeout := opts.OperationTimeout
	if timeout <= 0 {
		timeout = defaultOperationTimeout
	}
	return &AuthService{
		users:      opts.Users,
		hasher:     opts.Hasher,
		verifier:   verifier,
		sessions:   opts.Sessions,
		sessionTTL: opts.SessionTTL,
		opTimeout:  timeout,
	}
}

// Register validates the request, hashes the password, and creates the
// account. Validation failures come back as the full list of problems. A
// hashing failure aborts the attempt; nothing is persisted without a hash.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	hash, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not process registration")
	}

	user, err := s.users.Create(ctx, model.CreateUserParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domainauth.RoleUser,
		AvatarURL:    avatar.URL(req.Email),
	})
	if err != nil {
		if errors.Is(err, data.ErrEmailExists) {
			return nil, apperrors.Conflict("Email already exists.")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not create account")
	}

	return user, nil
}

// Login checks credentials and opens a session. Unknown address and wrong
// password both come back as an auth error carrying the same client-facing
// message.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	user, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrUnknownUser) || errors.Is(err, ErrBadPassword) {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeAuth, "Invalid email or password")
		}
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &session, nil
}

// GetSession retrieves a session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	// Check if session is expired
	if time.Now().After(session.ExpiresAt) {
		// Clean up expired session
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	id := uuid.New()
	return id.String()
}
