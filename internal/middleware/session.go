package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	// SessionCookie names the cookie carrying the opaque session identifier.
	SessionCookie = "scriptoria_sid"

	sessionIDKey contextKey = "session_id"
)

// Session assigns every caller an opaque session identifier. The id arrives
// via cookie when present; otherwise a fresh uuid is minted and set on the
// response. The identifier scopes the artifact cache and carries no
// authentication.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			sid = cookie.Value
		}
		if sid == "" {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionIDKey, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionIDFromContext returns the session identifier, or "".
func SessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}
