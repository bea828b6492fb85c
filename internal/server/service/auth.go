package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/achola/yummy-recipes/internal/server/config"
	"github.com/achola/yummy-recipes/internal/server/crypto"
	"github.com/achola/yummy-recipes/internal/server/mail"
	"github.com/achola/yummy-recipes/internal/server/validation"
	serr "github.com/achola/yummy-recipes/internal/shared/errors"
	"github.com/achola/yummy-recipes/internal/shared/models"
	"github.com/achola/yummy-recipes/internal/shared/utils"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (валидация + уникальность email/username)
//   - аутентификация (логин) и выпуск access-токена
//   - восстановление пароля (reset-токен + письмо)
type AuthService struct {
	users  UsersRepo
	mailer mail.Mailer

	hasher crypto.Hasher
	jwt    crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, mailer mail.Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		users:  users,
		mailer: mailer,

		hasher: crypto.Hasher{
			Kind: cfg.Password.Hasher,
			Argon2: crypto.Argon2Params{
				Time:      cfg.Password.Argon2.Time,
				MemoryKiB: cfg.Password.Argon2.MemoryKiB,
				Threads:   cfg.Password.Argon2.Threads,
				KeyLen:    cfg.Password.Argon2.KeyLen,
				SaltLen:   cfg.Password.Argon2.SaltLen,
			},
			BcryptCost: cfg.Password.Bcrypt.Cost,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
			ResetTTL:   cfg.Auth.ResetTTL,
		},
	}
}

// Register регистрирует нового пользователя.
//
// Порядок проверок: наличие -> формат -> спецсимволы -> длина -> уникальность.
// Все ошибки полей копятся в *validation.Error (ответ 422 одним куском).
//
// Возвращает:
//   - созданного пользователя (без хэша в JSON)
//   - *validation.Error при невалидных полях
//   - ErrAlreadyExists, если гонка со вставкой всё же случилась
func (s *AuthService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = utils.Normalize(email)

	verr := validation.NewError()

	if username == "" {
		verr.Add("username", "Username is required")
	} else {
		if validation.HasSpecialCharacter(username) {
			verr.Add("username", "Username should not contain special characters")
		}
		if !validation.LongEnough(username, validation.MinUsernameLen) {
			verr.Add("username", "Username should be at least 4 characters long")
		}
	}

	if email == "" {
		verr.Add("email", "Email is required")
	} else if !validation.ValidEmail(email) {
		verr.Add("email", "Please provide a valid email address")
	}

	if password == "" {
		verr.Add("password", "Password is required")
	} else if !validation.StrongPassword(password) {
		verr.Add("password", "Password should be at least 6 characters long with at least one uppercase, lowercase and numeric character")
	}

	if !verr.Empty() {
		return models.User{}, verr
	}

	// уникальность проверяем только на валидных полях
	if taken, err := s.users.EmailExists(ctx, email); err != nil {
		return models.User{}, err
	} else if taken {
		verr.Add("email", "A user with the same email already exists")
	}

	if taken, err := s.users.UsernameExists(ctx, username); err != nil {
		return models.User{}, err
	} else if taken {
		verr.Add("username", "A user with the same username already exists")
	}

	if !verr.Empty() {
		return models.User{}, verr
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}

	id, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		return models.User{}, err
	}

	return models.User{ID: id, Username: username, Email: email}, nil
}

// Login аутентифицирует пользователя и выдаёт access-токен.
//
// Поведение:
//   - не раскрывает факт существования email (неизвестный email и
//     неверный пароль дают одинаковый ErrInvalidCredentials)
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = utils.Normalize(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" || !validation.ValidEmail(email) {
		return "", serr.ErrInvalidInput
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", serr.ErrInternal
	}
	if !ok {
		return "", serr.ErrInvalidCredentials
	}

	token, err := crypto.NewAccessToken(user.ID.String(), s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}

	return token, nil
}

// ForgotPassword выпускает reset-токен и отправляет письмо.
//
// Неизвестный email не является ошибкой: ответ одинаковый в обоих случаях,
// чтобы по эндпоинту нельзя было перечислять зарегистрированные адреса.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = utils.Normalize(email)
	if email == "" || !validation.ValidEmail(email) {
		return serr.ErrInvalidInput
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := crypto.NewResetToken(user.ID.String(), s.jwt)
	if err != nil {
		return serr.ErrInternal
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		return serr.ErrInternal
	}
	return nil
}

// ResetPassword проверяет reset-токен и перезаписывает хэш пароля.
//
// Требования:
//   - токен валиден и не старше auth.reset_ttl;
//   - password == confirm;
//   - новый пароль проходит StrongPassword.
//
// Ошибки:
//   - ErrTokenExpired / ErrInvalidToken
//   - *validation.Error для полей пароля
func (s *AuthService) ResetPassword(ctx context.Context, token, password, confirm string) error {
	userID, err := crypto.ParseResetToken(token, s.jwt)
	if err != nil {
		return err
	}

	verr := validation.NewError()
	if password == "" {
		verr.Add("password", "Password is required")
	} else if !validation.StrongPassword(password) {
		verr.Add("password", "Password should be at least 6 characters long with at least one uppercase, lowercase and numeric character")
	}
	if password != confirm {
		verr.Add("confirm_password", "Passwords do not match")
	}
	if !verr.Empty() {
		return verr
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return serr.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		// пользователь из токена успел исчезнуть
		if errors.Is(err, serr.ErrNotFound) {
			return serr.ErrInvalidToken
		}
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return serr.ErrInternal
	}

	return s.users.UpdatePassword(ctx, user.ID, hash)
}
