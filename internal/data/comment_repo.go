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

// CommentRepo provides database operations for post comments.
type CommentRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCommentRepo creates a new CommentRepo with real time provider.
func NewCommentRepo(db *sql.DB) *CommentRepo {
	return &CommentRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewCommentRepoWithTimeProvider creates a new CommentRepo with a custom time provider (useful for tests).
func NewCommentRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *CommentRepo {
	return &CommentRepo{DB: db, timeProvider: tp}
}

// Create inserts a new comment.
func (r *CommentRepo) Create(ctx context.Context, req *model.CreateCommentRequest) (*model.Comment, error) {
	if req == nil {
		return nil, errors.New("create comment request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Comment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO comments (post_id, author_name, avatar_url, body, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, post_id, author_name, avatar_url, body, created_at`,
			req.PostID,
			strings.TrimSpace(req.AuthorName),
			req.AvatarURL,
			strings.TrimSpace(req.Body),
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Comment])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, ErrCommentPostMissing
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &out, nil
}

// ListByPost retrieves a post's comments, oldest first, the order they read
// in on the page.
func (r *CommentRepo) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	var rowsOut []model.Comment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, commentListByPostQuery, postID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Comment])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	res := make([]*model.Comment, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

const commentListByPostQuery = `
	SELECT id, post_id, author_name, avatar_url, body, created_at
	FROM comments
	WHERE post_id = $1
	ORDER BY created_at ASC`
