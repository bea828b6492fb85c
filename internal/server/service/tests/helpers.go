package tests

import (
	"context"
	"time"

	"github.com/achola/yummy-recipes/internal/server/config"
)

// testConfig — минимальный конфиг для сервисных тестов.
// Лёгкие параметры argon2, чтобы тесты не тормозили.
func testConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	cfg.Auth.Issuer = "yummy-recipes"
	cfg.Auth.Audience = "yummy-recipes-api"
	cfg.Auth.JWT.SigningKey = "supersecretkeysupersecretkey123456"
	cfg.Auth.AccessTTL = time.Hour
	cfg.Auth.ResetTTL = 3 * time.Minute

	cfg.Password.Hasher = "argon2id"
	cfg.Password.Argon2 = config.Argon2Config{
		Time:      1,
		MemoryKiB: 8 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	}

	return cfg
}

// fakeMailer записывает последнее отправленное письмо.
type fakeMailer struct {
	to    string
	token string
	err   error
	sent  int
}

func (m *fakeMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	if m.err != nil {
		return m.err
	}
	m.to = to
	m.token = token
	m.sent++
	return nil
}
