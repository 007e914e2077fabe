package auth

import (
	"context"
	"errors"
	"net/http"

	authsvc "authflow/internal/auth"
	"authflow/internal/models"
	"authflow/internal/utils"
)

// Lifecycle is the slice of the auth service the handlers depend on.
type Lifecycle interface {
	Register(ctx context.Context, email, password, name string) (models.User, string, error)
	VerifyEmail(ctx context.Context, code string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context, userID string) (models.User, error)
}

// writeLifecycleError maps a lifecycle failure to an HTTP response. Known
// failure kinds surface their message with 400; everything else is a generic
// server error so store or mail internals never leak.
func writeLifecycleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authsvc.ErrMissingFields),
		errors.Is(err, authsvc.ErrDuplicateEmail),
		errors.Is(err, authsvc.ErrInvalidOrExpiredCode),
		errors.Is(err, authsvc.ErrInvalidCredentials),
		errors.Is(err, authsvc.ErrUserNotFound),
		errors.Is(err, authsvc.ErrInvalidOrExpiredToken):
		utils.Fail(w, http.StatusBadRequest, capitalizeFirst(err.Error()))
	default:
		utils.Fail(w, http.StatusInternalServerError, "Server error")
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
