package httpx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

// newTestRenderer parses the real templates shipped with the application so
// handler tests exercise the same markup production serves.
func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})
	require.NoError(t, err)
	return renderer
}

// fakeAuthService is an in-memory AuthServiceInterface for handler tests.
type fakeAuthService struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
	nextID   int

	registerErr error
	loginErr    error
	registered  []model.RegisterRequest
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{sessions: map[string]domainauth.Session{}}
}

func (f *fakeAuthService) Register(_ context.Context, req model.RegisterRequest) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f.registered = append(f.registered, req)
	return &model.User{ID: "u-1", Name: req.Name, Email: req.Email, Role: domainauth.RoleUser}, nil
}

func (f *fakeAuthService) Login(_ context.Context, email, _ string) (*domainauth.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.nextID++
	session := domainauth.Session{
		ID:        fmt.Sprintf("sess-%d", f.nextID),
		UserID:    "u-1",
		Name:      "Test User",
		Email:     email,
		Role:      domainauth.RoleUser,
		AvatarURL: "https://www.gravatar.com/avatar/abc",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	f.sessions[session.ID] = session
	return &session, nil
}

func (f *fakeAuthService) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, apperrors.NotFound("session not found")
	}
	return &session, nil
}

func (f *fakeAuthService) Logout(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sessionID)
	return nil
}

// addSession seeds a session directly, bypassing Login.
func (f *fakeAuthService) addSession(session domainauth.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.ID] = session
}

func userSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "u-1",
		Name:      "Regular User",
		Email:     "user@example.com",
		Role:      domainauth.RoleUser,
		AvatarURL: "https://www.gravatar.com/avatar/abc",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func adminSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "u-admin",
		Name:      "Admin User",
		Email:     "admin@example.com",
		Role:      domainauth.RoleAdmin,
		AvatarURL: "https://www.gravatar.com/avatar/def",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// fakePostService is an in-memory PostServiceInterface.
type fakePostService struct {
	mu     sync.Mutex
	posts  map[string]*model.Post
	nextID int
}

func newFakePostService() *fakePostService {
	return &fakePostService{posts: map[string]*model.Post{}}
}

func (f *fakePostService) add(title string) *model.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	post := &model.Post{
		ID:        fmt.Sprintf("post-%d", f.nextID),
		AuthorID:  "u-admin",
		Title:     title,
		Body:      "body of " + title,
		CreatedAt: time.Date(2024, 1, f.nextID, 12, 0, 0, 0, time.UTC),
	}
	f.posts[post.ID] = post
	return post
}

func (f *fakePostService) Create(_ context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	post := &model.Post{
		ID:        fmt.Sprintf("post-%d", f.nextID),
		AuthorID:  req.AuthorID,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImgURL:    req.ImgURL,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	f.posts[post.ID] = post
	return post, nil
}

func (f *fakePostService) Get(_ context.Context, id string) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, apperrors.NotFound("post not found")
	}
	return post, nil
}

func (f *fakePostService) Latest(ctx context.Context) ([]*model.Post, error) {
	all, err := f.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > model.LatestPostsLimit {
		all = all[:model.LatestPostsLimit]
	}
	return all, nil
}

func (f *fakePostService) All(_ context.Context) ([]*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePostService) Update(_ context.Context, id string, req model.UpdatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, apperrors.NotFound("post not found")
	}
	post.Title = req.Title
	post.Subtitle = req.Subtitle
	post.ImgURL = req.ImgURL
	post.Body = req.Body
	return post, nil
}

func (f *fakePostService) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return apperrors.NotFound("post not found")
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostService) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posts)
}

// fakeCommentService is an in-memory CommentsService tied to a fakePostService.
type fakeCommentService struct {
	mu       sync.Mutex
	posts    *fakePostService
	comments map[string][]*model.Comment
	nextID   int
}

func newFakeCommentService(posts *fakePostService) *fakeCommentService {
	return &fakeCommentService{posts: posts, comments: map[string][]*model.Comment{}}
}

func (f *fakeCommentService) Add(ctx context.Context, sess domainauth.Session, postID, body string) (*model.Comment, error) {
	req := model.CreateCommentRequest{PostID: postID, AuthorName: sess.Name, AvatarURL: sess.AvatarURL, Body: body}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if _, err := f.posts.Get(ctx, postID); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	comment := &model.Comment{
		ID:         fmt.Sprintf("comment-%d", f.nextID),
		PostID:     postID,
		AuthorName: sess.Name,
		AvatarURL:  sess.AvatarURL,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	f.comments[postID] = append(f.comments[postID], comment)
	return comment, nil
}

func (f *fakeCommentService) ForPost(_ context.Context, postID string) ([]*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.comments[postID], nil
}

// fakeOwnerService serves a fixed site owner. A nil user reads as an empty
// database.
type fakeOwnerService struct {
	owner *model.User
	err   error
}

func newFakeOwnerService() *fakeOwnerService {
	return &fakeOwnerService{owner: &model.User{
		ID:        "owner-1",
		Name:      "Site Owner",
		Email:     "owner@example.com",
		Role:      domainauth.RoleAdmin,
		AvatarURL: "https://www.gravatar.com/avatar/owner",
	}}
}

func (f *fakeOwnerService) Owner(_ context.Context) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.owner == nil {
		return nil, apperrors.NotFound("site owner not found")
	}
	return f.owner, nil
}

// fakeContactService records sent messages and can fail on demand.
type fakeContactService struct {
	mu   sync.Mutex
	sent []model.ContactMessage
	err  error
}

func (f *fakeContactService) Send(_ context.Context, msg model.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}
