package auth

import (
	"net/http"

	"authflow/internal/utils"
)

type LogoutHandler struct {
	Secure bool
}

// ServeHTTP handles POST /api/auth/logout
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.Secure)
	utils.OK(w, http.StatusOK, "Logged out successfully", nil)
}
