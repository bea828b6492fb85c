package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/achola/yummy-recipes/internal/server/api"
	"github.com/achola/yummy-recipes/internal/server/config"
	"github.com/achola/yummy-recipes/internal/server/crypto"
	"github.com/achola/yummy-recipes/internal/server/middleware"
	"github.com/achola/yummy-recipes/internal/server/service"
	svcmocks "github.com/achola/yummy-recipes/internal/server/service/mocks"
	serr "github.com/achola/yummy-recipes/internal/shared/errors"
	"github.com/achola/yummy-recipes/internal/shared/logger"
	"github.com/achola/yummy-recipes/internal/shared/models"
)

// newTestConfig — конфиг для хендлер-тестов: лёгкий argon2, короткие TTL
func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "issuer",
			Audience:  "audience",
			AccessTTL: 1 * time.Minute,
			ResetTTL:  3 * time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Hasher: "argon2id",
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 8 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
		Pagination: config.PaginationConfig{
			DefaultPerPage: 10,
			MaxPerPage:     100,
		},
	}
}

// noopMailer глотает письма в тестах, где они не проверяются
type noopMailer struct{}

func (noopMailer) SendPasswordReset(ctx context.Context, to, token string) error { return nil }

// newAuthHandler создаёт Handler с моками репозиториев через dependency injection
func newAuthHandler(t *testing.T) (*api.Handler, *svcmocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)

	cfg := newTestConfig()
	svc := &service.Services{Auth: service.NewAuthService(users, noopMailer{}, cfg)}

	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	log := logger.NewHTTPLogger()

	return api.NewHandler(svc, log, verifier, nil), users
}

func TestHandler_Register_BadJSON(t *testing.T) {
	t.Parallel()

	h, _ := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if rec.Body.String() == "" {
		t.Fatalf("expected error body, got empty")
	}
}

func TestHandler_Register_Success(t *testing.T) {
	t.Parallel()

	h, users := newAuthHandler(t)

	userID := uuid.New()

	users.EXPECT().EmailExists(gomock.Any(), "achola@example.com").Return(false, nil)
	users.EXPECT().UsernameExists(gomock.Any(), "achola").Return(false, nil)
	users.EXPECT().
		Create(gomock.Any(), "achola", "achola@example.com", gomock.Any()).
		DoAndReturn(func(ctx context.Context, username, email, hash string) (uuid.UUID, error) {
			if hash == "" {
				t.Fatalf("expected non-empty password hash")
			}
			return userID, nil
		})

	body, _ := json.Marshal(api.RegisterRequest{
		Username: "achola",
		Email:    "achola@example.com",
		Password: "Passw0rd",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp api.RegisterResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Status {
		t.Fatalf("expected status true")
	}
	if resp.User.ID != userID {
		t.Fatalf("expected user id %s, got %s", userID, resp.User.ID)
	}
	if resp.User.Username != "achola" {
		t.Fatalf("expected username achola, got %q", resp.User.Username)
	}
}

// 422 с картой ошибок по полям, до репозитория дело не доходит
func TestHandler_Register_ValidationFailed(t *testing.T) {
	t.Parallel()

	h, _ := newAuthHandler(t)

	body, _ := json.Marshal(api.RegisterRequest{
		Username: "ab",
		Email:    "not-an-email",
		Password: "weak",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, field := range []string{"username", "email", "password"} {
		if len(resp.Errors[field]) == 0 {
			t.Fatalf("expected errors for field %q, got %v", field, resp.Errors)
		}
	}
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	t.Parallel()

	h, users := newAuthHandler(t)

	users.EXPECT().EmailExists(gomock.Any(), "achola@example.com").Return(true, nil)
	users.EXPECT().UsernameExists(gomock.Any(), "achola").Return(false, nil)

	body, _ := json.Marshal(api.RegisterRequest{
		Username: "achola",
		Email:    "achola@example.com",
		Password: "Passw0rd",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d, got %d", http.StatusUnprocessableEntity, rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Errors["email"]) == 0 {
		t.Fatalf("expected email error, got %v", resp.Errors)
	}
}

func TestHandler_Login_Success(t *testing.T) {
	t.Parallel()

	h, users := newAuthHandler(t)

	cfg := newTestConfig()
	hasher := crypto.Hasher{
		Kind: cfg.Password.Hasher,
		Argon2: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
	}
	hash, err := hasher.Hash("Passw0rd")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	users.EXPECT().
		GetByEmail(gomock.Any(), "achola@example.com").
		Return(models.User{ID: uuid.New(), Email: "achola@example.com", PasswordHash: hash}, nil)

	body, _ := json.Marshal(api.LoginRequest{Email: "achola@example.com", Password: "Passw0rd"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp api.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected non-empty token")
	}
}

// Неизвестный email и неверный пароль неразличимы: 401 в обоих случаях
func TestHandler_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	h, users := newAuthHandler(t)

	users.EXPECT().
		GetByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, serr.ErrNotFound)

	body, _ := json.Marshal(api.LoginRequest{Email: "ghost@example.com", Password: "Passw0rd"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandler_Login_EmptyBody(t *testing.T) {
	t.Parallel()

	h, _ := newAuthHandler(t)

	body, _ := json.Marshal(api.LoginRequest{})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

// Ответ одинаковый для известного и неизвестного email
func TestHandler_ForgotPassword_AlwaysOK(t *testing.T) {
	t.Parallel()

	h, users := newAuthHandler(t)

	users.EXPECT().
		GetByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, serr.ErrNotFound)

	body, _ := json.Marshal(api.ForgotPasswordRequest{Email: "ghost@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/auth/forgot_password", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.ForgotPassword(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestHandler_ResetPassword_Success(t *testing.T) {
	t.Parallel()

	h, users := newAuthHandler(t)

	cfg := newTestConfig()
	userID := uuid.New()

	token, err := crypto.NewResetToken(userID.String(), crypto.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		ResetTTL:   cfg.Auth.ResetTTL,
	})
	if err != nil {
		t.Fatalf("issue reset token: %v", err)
	}

	users.EXPECT().GetByID(gomock.Any(), userID).Return(models.User{ID: userID}, nil)
	users.EXPECT().UpdatePassword(gomock.Any(), userID, gomock.Any()).Return(nil)

	body, _ := json.Marshal(api.ResetPasswordRequest{
		Password:        "NewPassw0rd",
		ConfirmPassword: "NewPassw0rd",
	})

	r := chi.NewRouter()
	r.Post("/auth/reset_password/{token}", h.ResetPassword)

	req := httptest.NewRequest(http.MethodPost, "/auth/reset_password/"+token, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestHandler_ResetPassword_BadToken(t *testing.T) {
	t.Parallel()

	h, _ := newAuthHandler(t)

	body, _ := json.Marshal(api.ResetPasswordRequest{
		Password:        "NewPassw0rd",
		ConfirmPassword: "NewPassw0rd",
	})

	r := chi.NewRouter()
	r.Post("/auth/reset_password/{token}", h.ResetPassword)

	req := httptest.NewRequest(http.MethodPost, "/auth/reset_password/garbage", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}
