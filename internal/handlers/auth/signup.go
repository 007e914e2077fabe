package auth

import (
	"encoding/json"
	"net/http"

	"authflow/internal/utils"
)

type SignupHandler struct {
	Auth     Lifecycle
	TTLHours int
	Secure   bool
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /api/auth/signup
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.Auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeLifecycleError(w, err)
		return
	}

	setSessionCookie(w, token, h.TTLHours, h.Secure)
	utils.OK(w, http.StatusCreated, "User created successfully", user.Sanitized())
}
