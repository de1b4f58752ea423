package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID returns middleware that tags every request with an ID. An
// incoming X-Request-Id header is trusted and propagated; otherwise a fresh
// UUID is generated. The ID is echoed in the response header.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := ctxutil.WithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
