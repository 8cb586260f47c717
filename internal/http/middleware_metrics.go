package httpx

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/inkwell-dev/inkwell/internal/observability/statsd"
)

// Metrics returns a middleware that emits a counter and a timing per request.
// Tags carry the method, response status, and the leading path segment, so
// metric cardinality stays bounded by the site's sections rather than raw URLs.
func Metrics(sink statsd.Sink) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			tags := map[string]string{
				"method":  r.Method,
				"status":  strconv.Itoa(ww.status),
				"section": pathSection(r.URL.Path),
			}
			sink.Count("http.requests", 1, tags)
			sink.Timing("http.request_duration", time.Since(start), tags)
		})
	}
}

// pathSection reduces a request path to its leading segment: "/posts/123"
// becomes "posts" and "/" becomes "home".
func pathSection(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return "home"
	}
	section, _, _ := strings.Cut(trimmed, "/")
	return section
}
