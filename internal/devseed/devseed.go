// Package devseed populates a development database with an admin account and
// a first post so the site is usable immediately after boot.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/inkwell-dev/inkwell/internal/adapters/bcrypthash"
	"github.com/inkwell-dev/inkwell/internal/avatar"
	"github.com/inkwell-dev/inkwell/internal/data"
	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	"github.com/inkwell-dev/inkwell/internal/ports"
)

const (
	adminName  = "Inkwell Admin"
	adminEmail = "admin@inkwell.local"

	// defaultAdminPassword is only ever used in development mode; override
	// with SEED_ADMIN_PASSWORD.
	defaultAdminPassword = "password123"

	welcomeTitle = "Welcome to Inkwell"
	welcomeBody  = "This post was created by the development seeder. " +
		"Log in as the seeded admin to edit or delete it and write your own."
)

// Seeder creates development fixtures. Construct with New.
type Seeder struct {
	users  *data.UserRepo
	posts  *data.PostRepo
	hasher ports.PasswordHasher
	logger *slog.Logger
}

// New constructs a Seeder using the provided database and bcrypt cost.
func New(db *sql.DB, bcryptCost int, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		users:  data.NewUserRepo(db),
		posts:  data.NewPostRepo(db),
		hasher: bcrypthash.New(bcryptCost),
		logger: logger,
	}
}

// Run seeds the admin account and welcome post. Both steps are idempotent;
// rerunning against an already seeded database is a no-op.
func (s *Seeder) Run(ctx context.Context) error {
	admin, err := s.ensureAdmin(ctx)
	if err != nil {
		return err
	}
	return s.ensureWelcomePost(ctx, admin)
}

func (s *Seeder) ensureAdmin(ctx context.Context) (*model.User, error) {
	existing, err := s.users.GetByEmail(ctx, adminEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, data.ErrUserNotFound) {
		return nil, fmt.Errorf("look up seeded admin: %w", err)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}
	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("hash seeded admin password: %w", err)
	}

	admin, err := s.users.Create(ctx, model.CreateUserParams{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         domainauth.RoleAdmin,
		AvatarURL:    avatar.URL(adminEmail),
	})
	if err != nil {
		return nil, fmt.Errorf("create seeded admin: %w", err)
	}

	s.logger.InfoContext(ctx, "seeded admin account", slog.String("email", adminEmail))
	return admin, nil
}

func (s *Seeder) ensureWelcomePost(ctx context.Context, admin *model.User) error {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list posts for seeding: %w", err)
	}
	if len(posts) > 0 {
		return nil
	}

	post, err := s.posts.Create(ctx, &model.CreatePostRequest{
		AuthorID: admin.ID,
		Title:    welcomeTitle,
		Subtitle: "Your blog is up and running",
		Body:     welcomeBody,
	})
	if err != nil {
		return fmt.Errorf("create welcome post: %w", err)
	}

	s.logger.InfoContext(ctx, "seeded welcome post", slog.String("post_id", post.ID))
	return nil
}
