package httpx

import (
	"context"
	"log/slog"
	"net/http"

	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

// CommentWriterInterface defines the interface for adding comments.
type CommentWriterInterface interface {
	Add(ctx context.Context, sess domainauth.Session, postID, body string) (*model.Comment, error)
}

// CommentHandlers provides HTTP handlers for comment submission.
type CommentHandlers struct {
	Svc    CommentWriterInterface
	T      *TemplateRenderer
	Logger *slog.Logger
}

func (h *CommentHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Create handles the comment form on a post page. The comment's author name
// and avatar come from the session, never from the form.
// POST /posts/{id}/comments. Requires an authenticated session.
func (h *CommentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	session := GetSessionFromContext(r.Context())
	if session == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	postID := r.PathValue("id")
	body := r.FormValue("body")

	_, err := h.Svc.Add(r.Context(), *session, postID, body)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			SetFlash(w, FlashError, appErrorMessage(err, "Comment cannot be empty."))
			http.Redirect(w, r, "/posts/"+postID, http.StatusSeeOther)
		case apperrors.IsNotFound(err):
			renderErrorPage(h.T, w, r, errorPageParams{
				Status:  http.StatusNotFound,
				Title:   "Not Found",
				Message: "The page you are looking for does not exist.",
			})
		default:
			h.logger().ErrorContext(r.Context(), "comment failed",
				"post_id", postID,
				"error", err,
			)
			SetFlash(w, FlashError, "Something went wrong. Please try again later.")
			http.Redirect(w, r, "/posts/"+postID, http.StatusSeeOther)
		}
		return
	}

	SetFlash(w, FlashSuccess, "Comment added")
	http.Redirect(w, r, "/posts/"+postID, http.StatusSeeOther)
}
