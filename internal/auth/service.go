package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"authflow/internal/mailer"
	"authflow/internal/models"
	"authflow/internal/store"
	"authflow/internal/utils"
)

const (
	verificationTTL = 24 * time.Hour
	resetTTL        = 1 * time.Hour
	resetTokenBytes = 20
)

// Service orchestrates the account lifecycle: register, verify email, login,
// request password reset, complete password reset. Each operation touches a
// single user record and awaits its outbound email before reporting success.
type Service struct {
	store     store.UserStore
	mailer    mailer.Mailer
	jwtSecret string
	jwtTTLHrs int
	clientURL string

	// now is swappable for expiry tests.
	now func() time.Time
}

func NewService(st store.UserStore, m mailer.Mailer, jwtSecret string, jwtTTLHrs int, clientURL string) *Service {
	return &Service{
		store:     st,
		mailer:    m,
		jwtSecret: jwtSecret,
		jwtTTLHrs: jwtTTLHrs,
		clientURL: clientURL,
		now:       time.Now,
	}
}

// Register creates the user in the pending-verification state, emails the
// verification code and returns a session token right away. Login is not
// gated on verification.
func (s *Service) Register(ctx context.Context, email, password, name string) (models.User, string, error) {
	if email == "" || password == "" || name == "" {
		return models.User{}, "", ErrMissingFields
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	code, err := utils.VerificationCode()
	if err != nil {
		return models.User{}, "", fmt.Errorf("generate verification code: %w", err)
	}

	user, err := s.store.Create(ctx, models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Verification: &models.EmailVerification{
			Code:      code,
			ExpiresAt: s.now().Add(verificationTTL),
		},
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		return models.User{}, "", ErrDuplicateEmail
	}
	if err != nil {
		return models.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), s.jwtSecret, s.jwtTTLHrs)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue session token: %w", err)
	}

	if err := s.mailer.SendVerificationEmail(ctx, user.Email, code); err != nil {
		return models.User{}, "", fmt.Errorf("send verification email: %w", err)
	}

	log.WithFields(log.Fields{"user_id": user.ID.Hex(), "email": user.Email}).Info("user registered")
	return user, token, nil
}

// VerifyEmail consumes an outstanding verification code. A wrong code and an
// expired one are indistinguishable to the caller.
func (s *Service) VerifyEmail(ctx context.Context, code string) (models.User, error) {
	user, err := s.store.GetByVerificationCode(ctx, code, s.now())
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrInvalidOrExpiredCode
	}
	if err != nil {
		return models.User{}, fmt.Errorf("lookup verification code: %w", err)
	}

	if err := s.store.MarkVerified(ctx, user.ID); err != nil {
		return models.User{}, fmt.Errorf("mark verified: %w", err)
	}
	user.IsVerified = true
	user.Verification = nil

	if err := s.mailer.SendWelcomeEmail(ctx, user.Email, user.Name); err != nil {
		return models.User{}, fmt.Errorf("send welcome email: %w", err)
	}

	log.WithField("user_id", user.ID.Hex()).Info("email verified")
	return user, nil
}

// Login checks credentials and issues a session token. Unknown email and
// wrong password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, "", fmt.Errorf("lookup user: %w", err)
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), s.jwtSecret, s.jwtTTLHrs)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue session token: %w", err)
	}

	now := s.now()
	if err := s.store.SetLastLogin(ctx, user.ID, now); err != nil {
		return models.User{}, "", fmt.Errorf("update last login: %w", err)
	}
	user.LastLoginAt = &now

	log.WithField("user_id", user.ID.Hex()).Info("user logged in")
	return user, token, nil
}

// ForgotPassword stores a fresh reset token on the record and emails the
// reset link. Unknown emails are reported as such.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	token, err := utils.RandomTokenHex(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	if err := s.store.SetResetToken(ctx, user.ID, token, s.now().Add(resetTTL)); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	resetURL := s.clientURL + "/reset-password/" + token
	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, resetURL); err != nil {
		return fmt.Errorf("send password reset email: %w", err)
	}

	log.WithField("user_id", user.ID.Hex()).Info("password reset requested")
	return nil
}

// ResetPassword consumes an outstanding reset token and replaces the
// password hash. A wrong token and an expired one are indistinguishable.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.store.GetByResetToken(ctx, token, s.now())
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		return fmt.Errorf("lookup reset token: %w", err)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.store.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.mailer.SendResetSuccessEmail(ctx, user.Email); err != nil {
		return fmt.Errorf("send reset confirmation email: %w", err)
	}

	log.WithField("user_id", user.ID.Hex()).Info("password reset completed")
	return nil
}

// Profile loads the record behind a validated session.
func (s *Service) Profile(ctx context.Context, userID string) (models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	user, err := s.store.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
