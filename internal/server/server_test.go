package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authsvc "authflow/internal/auth"
	"authflow/internal/config"
	"authflow/internal/middleware"
	"authflow/internal/models"
	"authflow/internal/store"
	"authflow/internal/utils"
)

// memStore is a minimal in-memory UserStore for routing tests.
type memStore struct {
	users map[string]*models.User
}

func (s *memStore) Create(_ context.Context, u models.User) (models.User, error) {
	if _, ok := s.users[u.Email]; ok {
		return models.User{}, store.ErrDuplicateEmail
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.Email] = &u
	return u, nil
}

func (s *memStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	if u, ok := s.users[email]; ok {
		return *u, nil
	}
	return models.User{}, store.ErrNotFound
}

func (s *memStore) GetByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return *u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *memStore) GetByVerificationCode(_ context.Context, code string, now time.Time) (models.User, error) {
	for _, u := range s.users {
		if u.Verification != nil && u.Verification.Code == code && u.Verification.ExpiresAt.After(now) {
			return *u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *memStore) GetByResetToken(_ context.Context, token string, now time.Time) (models.User, error) {
	for _, u := range s.users {
		if u.PasswordReset != nil && u.PasswordReset.Token == token && u.PasswordReset.ExpiresAt.After(now) {
			return *u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *memStore) MarkVerified(_ context.Context, id primitive.ObjectID) error {
	return s.mutate(id, func(u *models.User) { u.IsVerified = true; u.Verification = nil })
}

func (s *memStore) SetLastLogin(_ context.Context, id primitive.ObjectID, at time.Time) error {
	return s.mutate(id, func(u *models.User) { u.LastLoginAt = &at })
}

func (s *memStore) SetResetToken(_ context.Context, id primitive.ObjectID, token string, exp time.Time) error {
	return s.mutate(id, func(u *models.User) {
		u.PasswordReset = &models.PasswordReset{Token: token, ExpiresAt: exp}
	})
}

func (s *memStore) UpdatePassword(_ context.Context, id primitive.ObjectID, hash string) error {
	return s.mutate(id, func(u *models.User) { u.PasswordHash = hash; u.PasswordReset = nil })
}

func (s *memStore) mutate(id primitive.ObjectID, fn func(*models.User)) error {
	for _, u := range s.users {
		if u.ID == id {
			fn(u)
			return nil
		}
	}
	return store.ErrNotFound
}

// silentMailer accepts every send.
type silentMailer struct{}

func (silentMailer) SendVerificationEmail(context.Context, string, string) error { return nil }
func (silentMailer) SendWelcomeEmail(context.Context, string, string) error      { return nil }
func (silentMailer) SendPasswordResetEmail(context.Context, string, string) error {
	return nil
}
func (silentMailer) SendResetSuccessEmail(context.Context, string) error { return nil }

func newTestRouter() (http.Handler, *memStore) {
	st := &memStore{users: make(map[string]*models.User)}
	cfg := &config.Config{
		Port:      "0",
		JWTSecret: "router-test-secret",
		JWTTTLHrs: 168,
		ClientURL: "http://localhost:5173",
	}
	svc := authsvc.NewService(st, silentMailer{}, cfg.JWTSecret, cfg.JWTTTLHrs, cfg.ClientURL)
	return NewServer(cfg, svc).Router(), st
}

func doJSON(r http.Handler, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthAndRoot(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "running")
}

// Full pass through the lifecycle over the HTTP surface.
func TestAuthLifecycleOverHTTP(t *testing.T) {
	r, st := newTestRouter()

	// signup
	rec := doJSON(r, http.MethodPost, "/api/auth/signup",
		`{"email":"a@x.com","password":"Abcdef1!","name":"Ann"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)

	// session from signup already passes the guard
	rec = doJSON(r, http.MethodGet, "/api/auth/check-auth", "", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)

	// wrong verification code
	code := st.users["a@x.com"].Verification.Code
	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	rec = doJSON(r, http.MethodPost, "/api/auth/verify-email", `{"code":"`+wrong+`"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// correct verification code
	rec = doJSON(r, http.MethodPost, "/api/auth/verify-email", `{"code":"`+code+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, st.users["a@x.com"].IsVerified)

	// login
	rec = doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"Abcdef1!"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, st.users["a@x.com"].LastLoginAt)
	cookies = rec.Result().Cookies()

	// forgot password stores a 1h token
	rec = doJSON(r, http.MethodPost, "/api/auth/forgot-password", `{"email":"a@x.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	reset := st.users["a@x.com"].PasswordReset
	require.NotNil(t, reset)
	assert.WithinDuration(t, time.Now().Add(time.Hour), reset.ExpiresAt, time.Minute)

	// reset with the emailed token
	rec = doJSON(r, http.MethodPost, "/api/auth/reset-password/"+reset.Token,
		`{"password":"NewPass1!"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// old password rejected, new accepted
	rec = doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"Abcdef1!"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", envelope(t, rec).Message)

	rec = doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"NewPass1!"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// logout clears the cookie
	rec = doJSON(r, http.MethodPost, "/api/auth/logout", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Empty(t, cleared[0].Value)
}

func TestCheckAuth_Unauthorized(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/api/auth/check-auth", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, envelope(t, rec).Success)

	rec = doJSON(r, http.MethodGet, "/api/auth/check-auth", "",
		[]*http.Cookie{{Name: middleware.SessionCookieName, Value: "garbage"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDuplicateSignup(t *testing.T) {
	r, st := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/api/auth/signup",
		`{"email":"a@x.com","password":"Abcdef1!","name":"Ann"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/auth/signup",
		`{"email":"a@x.com","password":"Other1!","name":"Bob"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", envelope(t, rec).Message)
	assert.Len(t, st.users, 1)
}
