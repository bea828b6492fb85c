package tests

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/achola/yummy-recipes/internal/server/crypto"
	serr "github.com/achola/yummy-recipes/internal/shared/errors"
)

func testJWTConfig() crypto.JWTConfig {
	return crypto.JWTConfig{
		Issuer:     "yummy-recipes",
		Audience:   "yummy-recipes-api",
		SigningKey: "0123456789abcdef0123456789abcdef",
		AccessTTL:  time.Hour,
		ResetTTL:   3 * time.Minute,
	}
}

func TestNewAccessToken_Claims(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New().String()

	token, err := crypto.NewAccessToken(userID, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	require.NoError(t, err)

	require.Equal(t, userID, claims.Subject)
	require.Equal(t, cfg.Issuer, claims.Issuer)
	require.Contains(t, claims.Audience, cfg.Audience)
	require.WithinDuration(t, time.Now().Add(cfg.AccessTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestResetToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New().String()

	token, err := crypto.NewResetToken(userID, cfg)
	require.NoError(t, err)

	got, err := crypto.ParseResetToken(token, cfg)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

// Просроченный reset-токен
func TestParseResetToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ResetTTL = -time.Minute

	token, err := crypto.NewResetToken(uuid.New().String(), cfg)
	require.NoError(t, err)

	_, err = crypto.ParseResetToken(token, cfg)
	require.ErrorIs(t, err, serr.ErrTokenExpired)
}

// Чужая подпись
func TestParseResetToken_WrongKey(t *testing.T) {
	cfg := testJWTConfig()

	token, err := crypto.NewResetToken(uuid.New().String(), cfg)
	require.NoError(t, err)

	other := cfg
	other.SigningKey = "ffffffffffffffffffffffffffffffff"

	_, err = crypto.ParseResetToken(token, other)
	require.ErrorIs(t, err, serr.ErrInvalidToken)
}

// Access-токен нельзя скормить в reset: нет claim purpose.
func TestParseResetToken_AccessTokenRejected(t *testing.T) {
	cfg := testJWTConfig()

	token, err := crypto.NewAccessToken(uuid.New().String(), cfg)
	require.NoError(t, err)

	_, err = crypto.ParseResetToken(token, cfg)
	require.ErrorIs(t, err, serr.ErrInvalidToken)
}

func TestParseResetToken_Garbage(t *testing.T) {
	_, err := crypto.ParseResetToken("not-a-jwt", testJWTConfig())
	require.ErrorIs(t, err, serr.ErrInvalidToken)
}
