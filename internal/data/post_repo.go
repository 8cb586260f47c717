package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/inkwell-dev/inkwell/internal/data/pgxutil"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
)

// PostRepo provides database operations for blog posts.
type PostRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPostRepo creates a new PostRepo with real time provider.
func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPostRepoWithTimeProvider creates a new PostRepo with a custom time provider (useful for tests).
func NewPostRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PostRepo {
	return &PostRepo{DB: db, timeProvider: tp}
}

// Create inserts a new post.
func (r *PostRepo) Create(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	if req == nil {
		return nil, errors.New("create post request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Post
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO posts (author_id, title, subtitle, img_url, body, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, author_id, title, subtitle, img_url, body, created_at`,
			req.AuthorID,
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Subtitle),
			strings.TrimSpace(req.ImgURL),
			req.Body,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Post])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a post by ID.
func (r *PostRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, postGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		post, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Post])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}
	return &post, nil
}

// ListLatest retrieves the newest posts, capped at limit.
func (r *PostRepo) ListLatest(ctx context.Context, limit int) ([]*model.Post, error) {
	if limit <= 0 {
		limit = model.LatestPostsLimit
	}
	return r.list(ctx, postListQuery, limit)
}

// ListAll retrieves every post, newest first.
func (r *PostRepo) ListAll(ctx context.Context) ([]*model.Post, error) {
	return r.list(ctx, postListAllQuery)
}

// Update rewrites a post's editable fields.
func (r *PostRepo) Update(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Post
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE posts
			SET title = $1, subtitle = $2, img_url = $3, body = $4
			WHERE id = $5
			RETURNING id, author_id, title, subtitle, img_url, body, created_at`,
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Subtitle),
			strings.TrimSpace(req.ImgURL),
			req.Body,
			id,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Post])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return &out, nil
}

// Delete removes a post and its comments in one transaction. Returns false
// when no post had the given ID.
func (r *PostRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
				return err
			}
			ct, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
			if err != nil {
				return err
			}
			rows = ct.RowsAffected()
			return nil
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}
	return rows > 0, nil
}

func (r *PostRepo) list(ctx context.Context, q string, args ...any) ([]*model.Post, error) {
	var rowsOut []model.Post
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Post])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	res := make([]*model.Post, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// --- helpers ---

const (
	postGetByIDQuery = `
		SELECT id, author_id, title, subtitle, img_url, body, created_at
		FROM posts
		WHERE id = $1`

	postListQuery = `
		SELECT id, author_id, title, subtitle, img_url, body, created_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1`

	postListAllQuery = `
		SELECT id, author_id, title, subtitle, img_url, body, created_at
		FROM posts
		ORDER BY created_at DESC`
)
