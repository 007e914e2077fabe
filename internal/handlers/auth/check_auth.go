package auth

import (
	"net/http"

	"authflow/internal/middleware"
	"authflow/internal/utils"
)

type CheckAuthHandler struct {
	Auth Lifecycle
}

// ServeHTTP handles GET /api/auth/check-auth
func (h *CheckAuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "Unauthorized - no token provided")
		return
	}

	user, err := h.Auth.Profile(r.Context(), userID)
	if err != nil {
		writeLifecycleError(w, err)
		return
	}

	utils.OK(w, http.StatusOK, "", user.Sanitized())
}
