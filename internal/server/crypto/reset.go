// Reset-токены для восстановления пароля.
//
// Отдельный вид JWT с claim purpose=password_reset, чтобы access-токен
// нельзя было скормить в /auth/reset_password и наоборот.
package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/achola/yummy-recipes/internal/shared/errors"
)

// resetPurpose — значение claim purpose у reset-токена.
const resetPurpose = "password_reset"

// resetClaims — claims reset-токена.
type resetClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// NewResetToken создаёт короткоживущий токен восстановления пароля.
// Срок жизни берётся из cfg.ResetTTL.
func NewResetToken(userID string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := resetClaims{
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  []string{cfg.Audience},
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.ResetTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseResetToken проверяет reset-токен и возвращает userID (sub).
//
// Ошибки:
//   - ErrTokenExpired — окно действия истекло;
//   - ErrInvalidToken — подпись/claims некорректны или purpose не совпадает.
func ParseResetToken(token string, cfg JWTConfig) (string, error) {
	claims := &resetClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", serr.ErrTokenExpired
		}
		return "", serr.ErrInvalidToken
	}

	if claims.Purpose != resetPurpose || claims.Subject == "" {
		return "", serr.ErrInvalidToken
	}

	return claims.Subject, nil
}
