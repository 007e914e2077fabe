package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailVerification is the pending email-verification state on a user.
// Code and ExpiresAt are set together and cleared together.
type EmailVerification struct {
	Code      string    `bson:"code" json:"-"`
	ExpiresAt time.Time `bson:"expiresAt" json:"-"`
}

// PasswordReset is the pending password-reset state on a user.
// Token and ExpiresAt are set together and cleared together.
type PasswordReset struct {
	Token     string    `bson:"token" json:"-"`
	ExpiresAt time.Time `bson:"expiresAt" json:"-"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	IsVerified   bool               `bson:"isVerified" json:"is_verified"`
	LastLoginAt  *time.Time         `bson:"lastLoginAt,omitempty" json:"last_login_at,omitempty"`

	Verification  *EmailVerification `bson:"verification,omitempty" json:"-"`
	PasswordReset *PasswordReset     `bson:"passwordReset,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// Sanitized returns a copy safe to hand to API responses: the password hash
// and any outstanding verification/reset secrets are stripped.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.Verification = nil
	u.PasswordReset = nil
	return u
}
