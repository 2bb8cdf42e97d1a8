package monitoring

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

type HTTPMetricsMiddleware struct {
	next http.Handler
}

func NewHTTPMetricsMiddleware(next http.Handler) *HTTPMetricsMiddleware {
	return &HTTPMetricsMiddleware{
		next: next,
	}
}

func (m *HTTPMetricsMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	wrapped := &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}

	handlerName := extractHandlerName(r.URL.Path)

	m.next.ServeHTTP(wrapped, r)

	duration := time.Since(start).Seconds()
	statusCode := strconv.Itoa(wrapped.statusCode)

	HTTPRequestDuration.WithLabelValues(handlerName, r.Method, statusCode).Observe(duration)
	HTTPRequestsTotal.WithLabelValues(handlerName, r.Method, statusCode).Inc()
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// extractHandlerName collapses paths with identifiers so the handler label
// keeps a bounded cardinality.
func extractHandlerName(path string) string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "root"
	}

	parts := strings.Split(path, "/")
	switch parts[0] {
	case "products":
		if len(parts) > 1 {
			return "products_detail"
		}
		return "products"
	case "cart":
		if len(parts) > 1 {
			return "cart_items"
		}
		return "cart"
	case "admin":
		if len(parts) > 2 {
			return "admin_" + parts[1] + "_detail"
		}
		if len(parts) > 1 {
			return "admin_" + parts[1]
		}
		return "admin"
	default:
		return parts[0]
	}
}

func WrapHandler(handler http.Handler) http.Handler {
	return NewHTTPMetricsMiddleware(handler)
}
