package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/google/uuid"

	"github.com/achola/yummy-recipes/internal/server/api"
	"github.com/achola/yummy-recipes/internal/server/config"
	"github.com/achola/yummy-recipes/internal/server/crypto"
	"github.com/achola/yummy-recipes/internal/server/middleware"
	"github.com/achola/yummy-recipes/internal/server/service"
	svcmocks "github.com/achola/yummy-recipes/internal/server/service/mocks"
	"github.com/achola/yummy-recipes/internal/shared/logger"
	"github.com/achola/yummy-recipes/internal/shared/models"
)

type routerEnv struct {
	router     http.Handler
	cfg        *config.Config
	users      *svcmocks.MockUsersRepo
	categories *svcmocks.MockCategoriesRepo
	recipes    *svcmocks.MockRecipesRepo
}

type nullMailer struct{}

func (nullMailer) SendPasswordReset(ctx context.Context, to, token string) error { return nil }

// newRouterEnv собирает полный стек: моки репозиториев -> сервисы -> handler -> router
func newRouterEnv(t *testing.T) *routerEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	categories := svcmocks.NewMockCategoriesRepo(ctrl)
	recipes := svcmocks.NewMockRecipesRepo(ctrl)

	cfg := &config.Config{
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

	svc := service.NewServices(service.Repositories{
		Users:      users,
		Categories: categories,
		Recipes:    recipes,
	}, nullMailer{}, cfg)

	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	h := api.NewHandler(svc, logger.NewHTTPLogger(), verifier, nil)

	return &routerEnv{
		router:     NewRouter(h),
		cfg:        cfg,
		users:      users,
		categories: categories,
		recipes:    recipes,
	}
}

func (e *routerEnv) accessToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token, err := crypto.NewAccessToken(userID.String(), crypto.JWTConfig{
		Issuer:     e.cfg.Auth.Issuer,
		Audience:   e.cfg.Auth.Audience,
		SigningKey: e.cfg.Auth.JWT.SigningKey,
		AccessTTL:  e.cfg.Auth.AccessTTL,
	})
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}
	return token
}

func TestRouter_AuthLogin_OK(t *testing.T) {
	env := newRouterEnv(t)

	email := "achola@example.com"
	password := "Passw0rd"
	userID := uuid.New()

	hasher := crypto.Hasher{
		Kind: env.cfg.Password.Hasher,
		Argon2: crypto.Argon2Params{
			Time:      env.cfg.Password.Argon2.Time,
			MemoryKiB: env.cfg.Password.Argon2.MemoryKiB,
			Threads:   env.cfg.Password.Argon2.Threads,
			KeyLen:    env.cfg.Password.Argon2.KeyLen,
			SaltLen:   env.cfg.Password.Argon2.SaltLen,
		},
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	env.users.
		EXPECT().
		GetByEmail(gomock.Any(), email).
		Return(models.User{ID: userID, Email: email, PasswordHash: hash}, nil)

	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected non-empty token")
	}

	// Мини-проверка, что токен похож на JWT (три части через точку)
	if parts := strings.Count(resp.Token, "."); parts < 2 {
		t.Fatalf("token does not look like JWT: %q", resp.Token)
	}
}

// Защищённые маршруты без токена отдают 401, хендлер не вызывается
func TestRouter_ProtectedRoutes_RequireToken(t *testing.T) {
	env := newRouterEnv(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/category/"},
		{http.MethodGet, "/category/"},
		{http.MethodGet, "/category/" + uuid.New().String()},
		{http.MethodPost, "/recipe/"},
		{http.MethodGet, "/recipe/"},
		{http.MethodDelete, "/recipe/" + uuid.New().String()},
	}

	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, bytes.NewBufferString("{}"))
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected %d, got %d", p.method, p.path, http.StatusUnauthorized, rec.Code)
		}
	}
}

// Полный проход: валидный токен -> middleware -> handler -> service -> repo
func TestRouter_ListCategories_WithToken_OK(t *testing.T) {
	env := newRouterEnv(t)

	userID := uuid.New()

	env.categories.
		EXPECT().
		GetAll(gomock.Any(), userID).
		Return([]models.Category{{ID: uuid.New(), UserID: userID, Name: "breakfast"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/category/", nil)
	req.Header.Set(middleware.TokenHeader, env.accessToken(t, userID))

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Categories) != 1 || resp.Categories[0].Name != "breakfast" {
		t.Fatalf("unexpected categories: %+v", resp.Categories)
	}
}

func TestRouter_ListRecipes_WithToken_OK(t *testing.T) {
	env := newRouterEnv(t)

	userID := uuid.New()

	env.recipes.
		EXPECT().
		List(gomock.Any(), userID, "", 10, 0).
		Return([]models.Recipe{{ID: uuid.New(), UserID: userID, Title: "espresso"}}, 1, nil)

	req := httptest.NewRequest(http.MethodGet, "/recipe/", nil)
	req.Header.Set(middleware.TokenHeader, env.accessToken(t, userID))

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Recipes    []models.Recipe   `json:"recipes"`
		Pagination models.Pagination `json:"pagination"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Recipes) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(resp.Recipes))
	}
	if resp.Pagination.Total != 1 || resp.Pagination.Pages != 1 {
		t.Fatalf("unexpected pagination %+v", resp.Pagination)
	}
}
