package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"authflow/internal/models"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create collides on the email key.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore persists user records. One record per email at all times.
type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error)

	// GetByVerificationCode matches only records whose outstanding
	// verification code equals code and has not expired at now.
	GetByVerificationCode(ctx context.Context, code string, now time.Time) (models.User, error)

	// GetByResetToken matches only records whose outstanding
	// reset token equals token and has not expired at now.
	GetByResetToken(ctx context.Context, token string, now time.Time) (models.User, error)

	MarkVerified(ctx context.Context, id primitive.ObjectID) error
	SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}
