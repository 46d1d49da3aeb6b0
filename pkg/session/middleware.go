package session

import (
	"context"
	"net/http"
	"time"

	"github.com/voltshop/storefront/pkg/logger"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// FromContext returns the session id attached by Middleware, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// Middleware resolves the request's guest session. A valid cookie keeps
// its session id; a missing or tampered cookie gets a fresh session and
// a new Set-Cookie. The session id is placed on the request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""

		if cookie, err := r.Cookie(CookieName); err == nil {
			id, err := m.Verify(cookie.Value)
			if err == nil {
				sessionID = id
			} else {
				logger.Warn(r.Context()).
					Str("remote_addr", r.RemoteAddr).
					Msg("Rejected invalid session cookie")
			}
		}

		if sessionID == "" {
			token, id, err := m.Issue()
			if err != nil {
				logger.Error(r.Context()).Err(err).Msg("Failed to issue session token")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			sessionID = id
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    token,
				Path:     "/",
				Expires:  time.Now().Add(m.ttl),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
