package middleware

import (
	"context"
	"net/http"

	"authflow/internal/utils"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

type contextKey string

const userIDKey contextKey = "userID"

// UserIDFromContext returns the user id attached by AuthJWT.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// WithUserID returns a context carrying the given user id.
// Exposed for handler tests.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// AuthJWT gates a route group on a valid session cookie. Missing, expired or
// tampered tokens are all rejected with 401 and never reach the handler.
func AuthJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				utils.Fail(w, http.StatusUnauthorized, "Unauthorized - no token provided")
				return
			}

			userID, err := utils.ParseJWT(cookie.Value, secret)
			if err != nil {
				utils.Fail(w, http.StatusUnauthorized, "Unauthorized - invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
