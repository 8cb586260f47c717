package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/inkwell-dev/inkwell/internal/data/pgxutil"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
)

// UserRepo provides database operations for user accounts.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// Create inserts a new user. The insert is a single atomic statement: a
// concurrent registration with the same email loses the conflict and gets
// ErrEmailExists, never a duplicate row.
func (r *UserRepo) Create(ctx context.Context, params model.CreateUserParams) (*model.User, error) {
	createdAt := r.timeProvider.Now().UTC()

	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (name, email, password_hash, role, avatar_url, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (email) DO NOTHING
			RETURNING id, name, email, password_hash, role, avatar_url, created_at`,
			strings.TrimSpace(params.Name),
			params.Email,
			params.PasswordHash,
			params.Role,
			params.AvatarURL,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		// DO NOTHING suppresses the conflicting row, so the statement
		// returns zero rows when the email is already taken.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmailExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &out, nil
}

// GetByEmail retrieves a user by email. Addresses are stored and matched
// exactly as submitted, so the lookup is case-sensitive.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByEmailQuery, "failed to get user by email", email)
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByIDQuery, "failed to get user by ID", id)
}

// GetOwner retrieves the site owner: the earliest-registered account. The
// home page renders this user's bio next to the latest posts.
func (r *UserRepo) GetOwner(ctx context.Context) (*model.User, error) {
	return r.getByQuery(ctx, userGetOwnerQuery, "failed to get site owner")
}

// --- helpers ---

const (
	userGetByEmailQuery = `
		SELECT id, name, email, password_hash, role, avatar_url, created_at
		FROM users
		WHERE email = $1`

	userGetByIDQuery = `
		SELECT id, name, email, password_hash, role, avatar_url, created_at
		FROM users
		WHERE id = $1`

	userGetOwnerQuery = `
		SELECT id, name, email, password_hash, role, avatar_url, created_at
		FROM users
		ORDER BY created_at ASC
		LIMIT 1`
)

func (r *UserRepo) getByQuery(
	ctx context.Context,
	q string,
	errMsg string,
	args ...any,
) (*model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &user, nil
}
