package auth

import (
	"encoding/json"
	"net/http"

	"authflow/internal/utils"
)

type VerifyEmailHandler struct {
	Auth Lifecycle
}

type VerifyEmailRequest struct {
	Code string `json:"code"`
}

// ServeHTTP handles POST /api/auth/verify-email
func (h *VerifyEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Auth.VerifyEmail(r.Context(), req.Code)
	if err != nil {
		writeLifecycleError(w, err)
		return
	}

	utils.OK(w, http.StatusOK, "Email verified successfully", user.Sanitized())
}
