package data_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/data"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	"github.com/inkwell-dev/inkwell/internal/testutil"
)

func createTestPost(t *testing.T, db *sql.DB, authorID, title string) *model.Post {
	t.Helper()
	repo := data.NewPostRepo(db)
	p, err := repo.Create(context.Background(), &model.CreatePostRequest{
		AuthorID: authorID,
		Title:    title,
		Subtitle: "a subtitle",
		Body:     "post body",
	})
	require.NoError(t, err)
	return p
}

func TestPostRepo_Create_Get_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := data.NewPostRepo(db)
		author := createTestUser(t, db, uniqueEmail())

		p := createTestPost(t, db, author.ID, "First post")
		require.NotEmpty(t, p.ID)
		assert.Equal(t, author.ID, p.AuthorID)
		assert.NotZero(t, p.CreatedAt)

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "First post", got.Title)

		updated, err := repo.Update(ctx, p.ID, model.UpdatePostRequest{
			Title: "Edited post",
			Body:  "edited body",
		})
		require.NoError(t, err)
		assert.Equal(t, "Edited post", updated.Title)
		assert.Equal(t, "edited body", updated.Body)
		assert.Equal(t, p.CreatedAt, updated.CreatedAt)

		ok, err := repo.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = repo.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, data.ErrPostNotFound)
	})
}

func TestPostRepo_ListLatest_OrderAndLimit(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		author := createTestUser(t, db, uniqueEmail())

		// Fixed times make the expected order deterministic.
		tp := data.NewFixedTimeProvider(testutil.TestTime())
		repo := data.NewPostRepoWithTimeProvider(db, tp)

		total := model.LatestPostsLimit + 2
		for i := 0; i < total; i++ {
			_, err := repo.Create(ctx, &model.CreatePostRequest{
				AuthorID: author.ID,
				Title:    fmt.Sprintf("Post %d", i),
				Body:     "body",
			})
			require.NoError(t, err)
			tp.AddTime(time.Minute)
		}

		latest, err := repo.ListLatest(ctx, model.LatestPostsLimit)
		require.NoError(t, err)
		require.Len(t, latest, model.LatestPostsLimit)
		// Newest first.
		assert.Equal(t, fmt.Sprintf("Post %d", total-1), latest[0].Title)
		for i := 1; i < len(latest); i++ {
			assert.False(t, latest[i].CreatedAt.After(latest[i-1].CreatedAt))
		}

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, total)
	})
}

func TestPostRepo_Delete_RemovesComments(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		postRepo := data.NewPostRepo(db)
		commentRepo := data.NewCommentRepo(db)
		author := createTestUser(t, db, uniqueEmail())

		p := createTestPost(t, db, author.ID, "Commented post")
		_, err := commentRepo.Create(ctx, &model.CreateCommentRequest{
			PostID:     p.ID,
			AuthorName: "Reader",
			Body:       "first!",
		})
		require.NoError(t, err)

		ok, err := postRepo.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		comments, err := commentRepo.ListByPost(ctx, p.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestPostRepo_Delete_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := data.NewPostRepo(db)

		ok, err := repo.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPostRepo_Update_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := data.NewPostRepo(db)

		_, err := repo.Update(context.Background(), "00000000-0000-0000-0000-000000000000", model.UpdatePostRequest{
			Title: "Ghost",
			Body:  "body",
		})
		assert.ErrorIs(t, err, data.ErrPostNotFound)
	})
}
