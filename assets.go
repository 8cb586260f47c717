// Package inkwell provides embedded assets for production builds.
package inkwell

import "embed"

// Embedded templates and static assets served by the HTTP layer.

//go:embed all:web/static
var StaticFS embed.FS

//go:embed all:web/templates
var TemplateFS embed.FS
