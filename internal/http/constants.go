package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// These constants ensure consistency across handlers and template mapping.
const (
	// Public pages.
	PageHome    = "home"
	PagePosts   = "posts"
	PagePost    = "post"
	PageAbout   = "about"
	PageContact = "contact"

	// Auth pages.
	PageLogin    = "login"
	PageRegister = "register"

	// Authenticated pages.
	PageDashboard = "dashboard"

	// Admin pages.
	PagePostForm = "post-form"
)

// Template paths used for loading templates in tests and production.
const (
	// Template directory paths.
	TemplatePathFromRoot = "web/templates"       // From project root
	TemplatePathFromTest = "../../web/templates" // From internal/http test files
)

// FormMode represents the mode of a post form (create or edit).
// Using a dedicated type improves compile-time checks and prevents typos.
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageHome:      "home-content",
	PagePosts:     "posts-content",
	PagePost:      "post-content",
	PageAbout:     "about-content",
	PageContact:   "contact-content",
	PageLogin:     "login-content",
	PageRegister:  "register-content",
	PageDashboard: "dashboard-content",
	PagePostForm:  "post-form-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
// This is the single source of truth for page-to-template mapping.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to home-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "home-content"
}
