package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
)

// CommentsService combines the read and write sides of the comment service.
type CommentsService interface {
	CommentServiceInterface
	CommentWriterInterface
}

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth     AuthServiceInterface
	Posts    PostServiceInterface
	Comments CommentsService
	Owner    OwnerServiceInterface
	Contact  ContactServiceInterface

	Renderer *TemplateRenderer
	StaticFS fs.FS // Filesystem serving /static/ (optional)

	CookieDomain string
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
// Form endpoints are covered by double-submit CSRF protection; safe methods
// pass through and pick up a token cookie for the next form render.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	postHandlers := &PostHandlers{
		Posts:    services.Posts,
		Comments: services.Comments,
		Owner:    services.Owner,
		T:        services.Renderer,
		Logger:   services.Logger,
	}
	commentHandlers := &CommentHandlers{
		Svc:    services.Comments,
		T:      services.Renderer,
		Logger: services.Logger,
	}
	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		T:            services.Renderer,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	contactHandlers := &ContactHandlers{
		Svc:    services.Contact,
		T:      services.Renderer,
		Logger: services.Logger,
	}

	registerPostRoutes(mux, postHandlers, services.Auth)
	registerCommentRoutes(mux, commentHandlers, services.Auth)
	registerAuthRoutes(mux, authHandlers, services.Auth)
	registerContactRoutes(mux, contactHandlers, services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static, served from the embedded filesystem.
	if services.StaticFS != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(services.StaticFS)))
	}

	// Catch-all for unmatched paths renders the 404 page.
	mux.Handle("/", notFoundHandler(services.Renderer))

	csrf := CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain})
	return csrf(mux)
}

func registerPostRoutes(mux *http.ServeMux, h *PostHandlers, auth AuthServiceInterface) {
	public := OptionalAuth(auth)
	member := RequireAuthenticated(auth)
	admin := RequireAdmin(auth)

	mux.Handle("GET /{$}", public(http.HandlerFunc(h.Home)))
	mux.Handle("GET /posts", public(http.HandlerFunc(h.List)))
	mux.Handle("GET /posts/{id}", public(http.HandlerFunc(h.Show)))
	mux.Handle("GET /about", public(http.HandlerFunc(h.About)))

	mux.Handle("GET /dashboard", member(http.HandlerFunc(h.Dashboard)))

	mux.Handle("GET /posts/new", admin(http.HandlerFunc(h.NewForm)))
	mux.Handle("POST /posts/new", admin(http.HandlerFunc(h.Create)))
	mux.Handle("GET /posts/{id}/edit", admin(http.HandlerFunc(h.EditForm)))
	mux.Handle("POST /posts/{id}/edit", admin(http.HandlerFunc(h.Update)))
	mux.Handle("POST /posts/{id}/delete", admin(http.HandlerFunc(h.Delete)))
}

func registerCommentRoutes(mux *http.ServeMux, h *CommentHandlers, auth AuthServiceInterface) {
	member := RequireAuthenticated(auth)
	mux.Handle("POST /posts/{id}/comments", member(http.HandlerFunc(h.Create)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, auth AuthServiceInterface) {
	anonymous := RequireAnonymous(auth)

	mux.Handle("GET /register", anonymous(http.HandlerFunc(h.RegisterForm)))
	mux.Handle("POST /register", anonymous(http.HandlerFunc(h.Register)))
	mux.Handle("GET /login", anonymous(http.HandlerFunc(h.LoginForm)))
	mux.Handle("POST /login", anonymous(http.HandlerFunc(h.Login)))

	// GET kept alongside POST for parity with plain logout links.
	mux.HandleFunc("GET /logout", h.Logout)
	mux.HandleFunc("POST /logout", h.Logout)
}

func registerContactRoutes(mux *http.ServeMux, h *ContactHandlers, auth AuthServiceInterface) {
	public := OptionalAuth(auth)
	mux.Handle("GET /contact", public(http.HandlerFunc(h.Form)))
	mux.Handle("POST /contact", public(http.HandlerFunc(h.Send)))
}

// notFoundHandler renders the standalone 404 page for unmatched routes.
func notFoundHandler(t *TemplateRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renderErrorPage(t, w, r, errorPageParams{
			Status:  http.StatusNotFound,
			Title:   "Not Found",
			Message: "The page you are looking for does not exist.",
		})
	})
}
