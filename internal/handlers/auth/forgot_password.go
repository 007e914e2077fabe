package auth

import (
	"encoding/json"
	"net/http"

	"authflow/internal/utils"
)

type ForgotPasswordHandler struct {
	Auth Lifecycle
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ServeHTTP handles POST /api/auth/forgot-password
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Auth.ForgotPassword(r.Context(), req.Email); err != nil {
		writeLifecycleError(w, err)
		return
	}

	utils.OK(w, http.StatusOK, "Password reset link sent to your email", nil)
}
