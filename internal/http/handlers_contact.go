package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

// ContactServiceInterface defines the interface for contact mail dispatch.
type ContactServiceInterface interface {
	Send(ctx context.Context, msg model.ContactMessage) error
}

// ContactHandlers provides HTTP handlers for the contact page.
type ContactHandlers struct {
	Svc    ContactServiceInterface
	T      *TemplateRenderer
	Logger *slog.Logger
}

func (h *ContactHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Form handles the contact page.
// GET /contact.
func (h *ContactHandlers) Form(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, contactMeta()).WithFlash(w).Build()
	h.render(w, r, data)
}

// Send handles the contact form submission. The page re-renders in place with
// "Done" on success and "Not Done" when mail dispatch fails.
// POST /contact.
func (h *ContactHandlers) Send(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	msg := model.ContactMessage{
		Name:    r.FormValue("name"),
		ReplyTo: r.FormValue("email"),
		Subject: r.FormValue("subject"),
		Body:    r.FormValue("message"),
	}

	err := h.Svc.Send(r.Context(), msg)
	if err == nil {
		data := NewTemplateData(r, contactMeta()).
			With("Flash", &Flash{Kind: FlashSuccess, Message: "Done"}).
			Build()
		h.render(w, r, data)
		return
	}

	if isValidationFailure(err) {
		var msgs []string
		if verrs, ok := apperrors.AsValidationErrors(err); ok {
			msgs = verrs.Messages()
		} else {
			msgs = []string{appErrorMessage(err, "Please check the form and try again.")}
		}
		data := NewTemplateData(r, contactMeta()).
			WithErrors(msgs).
			With("Form", msg).
			Build()
		h.render(w, r, data)
		return
	}

	h.logger().ErrorContext(r.Context(), "contact mail failed", "error", err)
	data := NewTemplateData(r, contactMeta()).
		With("Flash", &Flash{Kind: FlashError, Message: "Not Done"}).
		With("Form", msg).
		Build()
	h.render(w, r, data)
}

func (h *ContactHandlers) render(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if err := h.T.RenderFull(w, r, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func contactMeta() PageMeta {
	return PageMeta{Title: "Contact", PageTitle: "Contact", CurrentPage: PageContact}
}
