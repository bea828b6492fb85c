package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/achola/yummy-recipes/internal/server/middleware"
)

// Вспомогательная функция для JWT
func makeToken(t *testing.T, key, sub, iss, aud string, exp time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   sub,
		Issuer:    iss,
		Audience:  []string{aud},
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func doRequest(t *testing.T, v *middleware.JWTVerifier, token string, next http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/category/", nil)
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	rec := httptest.NewRecorder()
	v.AuthMiddleware()(next).ServeHTTP(rec, req)
	return rec
}

func authMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
		Status  bool   `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status {
		t.Fatal("expected status=false in auth error")
	}
	return body.Message
}

// Успех
func TestAuthMiddleware_OK(t *testing.T) {
	key := "secret"
	v := middleware.NewJWTVerifier(key, "issuer", "aud")

	userID := uuid.New()
	token := makeToken(t, key, userID.String(), "issuer", "aud", time.Now().Add(time.Minute))

	called := false
	rec := doRequest(t, v, token, func(w http.ResponseWriter, r *http.Request) {
		called = true

		uid, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			t.Fatal("user id not found in context")
		}
		if uid != userID {
			t.Fatalf("unexpected user id: %v", uid)
		}
		w.WriteHeader(http.StatusOK)
	})

	if !called {
		t.Fatal("next handler was not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

// Нет токена
func TestAuthMiddleware_MissingToken(t *testing.T) {
	v := middleware.NewJWTVerifier("secret", "issuer", "aud")

	rec := doRequest(t, v, "", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if msg := authMessage(t, rec); msg != "missing access token" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

// Просроченный токен — отдельное сообщение
func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	key := "secret"
	v := middleware.NewJWTVerifier(key, "issuer", "aud")

	token := makeToken(t, key, uuid.New().String(), "issuer", "aud", time.Now().Add(-time.Minute))

	rec := doRequest(t, v, token, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if msg := authMessage(t, rec); msg != "token expired" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

// Битый токен
func TestAuthMiddleware_GarbageToken(t *testing.T) {
	v := middleware.NewJWTVerifier("secret", "issuer", "aud")

	rec := doRequest(t, v, "not-a-jwt", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if msg := authMessage(t, rec); msg != "invalid token" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

// Чужая подпись
func TestAuthMiddleware_WrongKey(t *testing.T) {
	v := middleware.NewJWTVerifier("secret", "issuer", "aud")

	token := makeToken(t, "other-secret", uuid.New().String(), "issuer", "aud", time.Now().Add(time.Minute))

	rec := doRequest(t, v, token, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if msg := authMessage(t, rec); msg != "invalid token" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

// Не тот issuer/audience
func TestAuthMiddleware_WrongIssuerAudience(t *testing.T) {
	key := "secret"
	v := middleware.NewJWTVerifier(key, "issuer", "aud")

	token := makeToken(t, key, uuid.New().String(), "evil-issuer", "aud", time.Now().Add(time.Minute))
	rec := doRequest(t, v, token, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	token = makeToken(t, key, uuid.New().String(), "issuer", "evil-aud", time.Now().Add(time.Minute))
	rec = doRequest(t, v, token, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

// sub не uuid
func TestAuthMiddleware_BadSubject(t *testing.T) {
	key := "secret"
	v := middleware.NewJWTVerifier(key, "issuer", "aud")

	token := makeToken(t, key, "not-a-uuid", "issuer", "aud", time.Now().Add(time.Minute))

	rec := doRequest(t, v, token, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if msg := authMessage(t, rec); msg != "invalid token" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
