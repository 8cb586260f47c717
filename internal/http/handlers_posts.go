package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

// PostServiceInterface defines the interface for post service operations.
type PostServiceInterface interface {
	Create(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	Latest(ctx context.Context) ([]*model.Post, error)
	All(ctx context.Context) ([]*model.Post, error)
	Update(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id string) error
}

// CommentServiceInterface defines the interface for comment service operations.
type CommentServiceInterface interface {
	ForPost(ctx context.Context, postID string) ([]*model.Comment, error)
}

// OwnerServiceInterface defines the interface for the site-owner lookup.
type OwnerServiceInterface interface {
	Owner(ctx context.Context) (*model.User, error)
}

// PostHandlers provides HTTP handlers for public post pages and the admin editor.
type PostHandlers struct {
	Posts    PostServiceInterface
	Comments CommentServiceInterface
	Owner    OwnerServiceInterface
	T        *TemplateRenderer
	Logger   *slog.Logger
}

func (h *PostHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Home handles the landing page showing the latest posts next to the site
// owner's bio.
// GET /.
func (h *PostHandlers) Home(w http.ResponseWriter, r *http.Request) {
	g, gctx := errgroup.WithContext(r.Context())
	var posts []*model.Post
	var author *model.User

	g.Go(func() error {
		var err error
		posts, err = h.Posts.Latest(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		author, err = h.Owner.Owner(gctx)
		// A fresh database has no owner yet; the page renders without a bio.
		if apperrors.IsNotFound(err) {
			author = nil
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		h.renderServerError(w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Home", PageTitle: "Latest Posts", CurrentPage: PageHome}).
		WithFlash(w).
		With("Posts", posts).
		With("Author", author).
		Build()
	h.render(w, r, data)
}

// List handles the full post archive.
// GET /posts.
func (h *PostHandlers) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.All(r.Context())
	if err != nil {
		h.renderServerError(w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Posts", PageTitle: "All Posts", CurrentPage: PagePosts}).
		WithFlash(w).
		With("Posts", posts).
		Build()
	h.render(w, r, data)
}

// Show handles the single post page with its comments.
// GET /posts/{id}.
func (h *PostHandlers) Show(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// The post and its comments are independent reads; fetch them
	// concurrently and fail the page on the first error.
	g, gctx := errgroup.WithContext(r.Context())
	var post *model.Post
	var comments []*model.Comment

	g.Go(func() error {
		var err error
		post, err = h.Posts.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = h.Comments.ForPost(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		if apperrors.IsNotFound(err) {
			h.renderNotFound(w, r)
			return
		}
		h.renderServerError(w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: post.Title, PageTitle: post.Title, CurrentPage: PagePost}).
		WithFlash(w).
		With("Post", post).
		With("Comments", comments).
		Build()
	h.render(w, r, data)
}

// About handles the static about page.
// GET /about.
func (h *PostHandlers) About(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{Title: "About", PageTitle: "About", CurrentPage: PageAbout}).
		WithFlash(w).
		Build()
	h.render(w, r, data)
}

// Dashboard handles the member dashboard listing all posts.
// GET /dashboard. Requires an authenticated session.
func (h *PostHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.All(r.Context())
	if err != nil {
		h.renderServerError(w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Dashboard", PageTitle: "Dashboard", CurrentPage: PageDashboard}).
		WithFlash(w).
		With("Posts", posts).
		Build()
	h.render(w, r, data)
}

// postFormData carries sticky field values between form renders.
type postFormData struct {
	ID       string
	Title    string
	Subtitle string
	ImgURL   string
	Body     string
}

// NewForm handles the create-post form.
// GET /posts/new. Requires an admin session.
func (h *PostHandlers) NewForm(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, postFormMeta(FormModeCreate)).
		WithFlash(w).
		With("Mode", FormModeCreate).
		With("Form", postFormData{}).
		Build()
	h.render(w, r, data)
}

// Create handles the create-post form submission.
// POST /posts/new. Requires an admin session.
func (h *PostHandlers) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	session := GetSessionFromContext(r.Context())
	if session == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	req := &model.CreatePostRequest{
		AuthorID: session.UserID,
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImgURL:   r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}

	post, err := h.Posts.Create(r.Context(), req)
	if err != nil {
		if apperrors.IsValidation(err) {
			data := NewTemplateData(r, postFormMeta(FormModeCreate)).
				WithErrors([]string{appErrorMessage(err, "Please check the form and try again.")}).
				With("Mode", FormModeCreate).
				With("Form", postFormData{
					Title:    req.Title,
					Subtitle: req.Subtitle,
					ImgURL:   req.ImgURL,
					Body:     req.Body,
				}).
				Build()
			h.render(w, r, data)
			return
		}
		h.renderServerError(w, r, err)
		return
	}

	SetFlash(w, FlashSuccess, "Post created")
	http.Redirect(w, r, "/posts/"+post.ID, http.StatusSeeOther)
}

// EditForm handles the edit-post form.
// GET /posts/{id}/edit. Requires an admin session.
func (h *PostHandlers) EditForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	post, err := h.Posts.Get(r.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			h.renderNotFound(w, r)
			return
		}
		h.renderServerError(w, r, err)
		return
	}

	data := NewTemplateData(r, postFormMeta(FormModeEdit)).
		WithFlash(w).
		With("Mode", FormModeEdit).
		With("Form", postFormData{
			ID:       post.ID,
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImgURL:   post.ImgURL,
			Body:     post.Body,
		}).
		Build()
	h.render(w, r, data)
}

// Update handles the edit-post form submission.
// POST /posts/{id}/edit. Requires an admin session.
func (h *PostHandlers) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	req := model.UpdatePostRequest{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImgURL:   r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}

	post, err := h.Posts.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			h.renderNotFound(w, r)
		case apperrors.IsValidation(err):
			data := NewTemplateData(r, postFormMeta(FormModeEdit)).
				WithErrors([]string{appErrorMessage(err, "Please check the form and try again.")}).
				With("Mode", FormModeEdit).
				With("Form", postFormData{
					ID:       id,
					Title:    req.Title,
					Subtitle: req.Subtitle,
					ImgURL:   req.ImgURL,
					Body:     req.Body,
				}).
				Build()
			h.render(w, r, data)
		default:
			h.renderServerError(w, r, err)
		}
		return
	}

	SetFlash(w, FlashSuccess, "Post updated")
	http.Redirect(w, r, "/posts/"+post.ID, http.StatusSeeOther)
}

// Delete handles post deletion, including the post's comments.
// POST /posts/{id}/delete. Requires an admin session.
func (h *PostHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.Posts.Delete(r.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			h.renderNotFound(w, r)
			return
		}
		h.renderServerError(w, r, err)
		return
	}

	SetFlash(w, FlashSuccess, "Post deleted")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *PostHandlers) render(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if err := h.T.RenderFull(w, r, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *PostHandlers) renderNotFound(w http.ResponseWriter, r *http.Request) {
	renderErrorPage(h.T, w, r, errorPageParams{
		Status:  http.StatusNotFound,
		Title:   "Not Found",
		Message: "The page you are looking for does not exist.",
	})
}

func (h *PostHandlers) renderServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().ErrorContext(r.Context(), "request failed",
		"path", r.URL.Path,
		"error", err,
	)
	renderErrorPage(h.T, w, r, errorPageParams{
		Status:  http.StatusInternalServerError,
		Title:   "Something went wrong",
		Message: "Something went wrong. Please try again later.",
	})
}

func postFormMeta(mode FormMode) PageMeta {
	if mode == FormModeEdit {
		return PageMeta{Title: "Edit Post", PageTitle: "Edit Post", CurrentPage: PagePostForm}
	}
	return PageMeta{Title: "New Post", PageTitle: "New Post", CurrentPage: PagePostForm}
}

// errorPageParams groups the pieces the error template needs.
type errorPageParams struct {
	Status  int
	Title   string
	Message string
}

// renderErrorPage writes the status code and renders the standalone error page.
// Falls back to http.Error when the template itself fails.
func renderErrorPage(t *TemplateRenderer, w http.ResponseWriter, r *http.Request, p errorPageParams) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(p.Status)
	data := map[string]any{
		"Status":  p.Status,
		"Title":   p.Title,
		"Message": p.Message,
	}
	if err := t.RenderError(w, r, data); err != nil {
		http.Error(w, p.Message, p.Status)
	}
}
