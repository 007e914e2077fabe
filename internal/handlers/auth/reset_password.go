package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"authflow/internal/utils"
)

type ResetPasswordHandler struct {
	Auth Lifecycle
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ServeHTTP handles POST /api/auth/reset-password/{token}
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Auth.ResetPassword(r.Context(), token, req.Password); err != nil {
		writeLifecycleError(w, err)
		return
	}

	utils.OK(w, http.StatusOK, "Password reset successful", nil)
}
