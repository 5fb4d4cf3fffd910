package middleware

import (
	"context"
	"net/http"
	"strings"
)

// SessionHeader carries the client session id used by the schedule board and the cart.
const SessionHeader = "X-Session-ID"

type sessionKey struct{}

// Session stores the board session id of the request in its context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(SessionHeader))
		if id == "" {
			id = r.URL.Query().Get("session_id")
		}
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, id)))
	})
}

// SessionID returns the session id stored by Session, or "" when the client sent none.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
