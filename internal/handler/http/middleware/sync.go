package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/brown009872/payroll-app/internal/store"
)

// WaitForSync makes a request with ?wait=true block until its changes are
// persisted, for at most timeout. Other requests return as soon as the
// change is applied in memory.
func WaitForSync(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait := r.URL.Query().Get("wait")
			if wait != "true" && wait != "1" {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(store.WithSync(r.Context()), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
