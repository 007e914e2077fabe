package auth

import (
	"encoding/json"
	"net/http"

	"authflow/internal/utils"
)

type LoginHandler struct {
	Auth     Lifecycle
	TTLHours int
	Secure   bool
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /api/auth/login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeLifecycleError(w, err)
		return
	}

	setSessionCookie(w, token, h.TTLHours, h.Secure)
	utils.OK(w, http.StatusOK, "Logged in successfully", user.Sanitized())
}
