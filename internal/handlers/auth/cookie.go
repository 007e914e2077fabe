package auth

import (
	"net/http"
	"time"

	"authflow/internal/middleware"
)

// setSessionCookie attaches the signed session token. Lifetime matches the
// token's own expiry so the browser and the guard agree on when it dies.
func setSessionCookie(w http.ResponseWriter, token string, ttlHours int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int((time.Duration(ttlHours) * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
