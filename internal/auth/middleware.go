// Package auth provides HTTP middleware for bearer token authentication.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// NewAuthMiddleware returns an HTTP middleware enforcing bearer token
// authentication. An empty configured token disables authentication
// entirely and every request passes through.
//
// When enabled, requests must carry exactly:
//
//	Authorization: Bearer <token>
//
// The prefix is case-sensitive with a single space. A missing header, wrong
// token, or empty token value is rejected with 401 and the next handler is
// never invoked. Token comparison is constant-time.
func NewAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, prefix) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			provided := header[len(prefix):]
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
