// HTTP-хендлеры регистрации, логина и восстановления пароля
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/achola/yummy-recipes/internal/server/validation"
	serr "github.com/achola/yummy-recipes/internal/shared/errors"
	"github.com/achola/yummy-recipes/internal/shared/models"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse описывает успешный ответ регистрации.
type RegisterResponse struct {
	Message string      `json:"message"`
	Status  bool        `json:"status"`
	User    models.User `json:"user"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает успешный ответ входа пользователя.
type LoginResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
	Token   string `json:"token"`
}

// ForgotPasswordRequest — тело запроса восстановления пароля.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest — тело запроса установки нового пароля.
type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна;
//   - 400 Bad Request: неверный JSON;
//   - 409 Conflict: email/username уже заняты (гонка со вставкой);
//   - 422 Unprocessable Entity: ошибки валидации полей;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} ErrorResponse "Bad JSON"
// @Failure      409 {object} ErrorResponse "Email or username taken"
// @Failure      422 {object} ErrorResponse "Validation failed"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	user, err := h.Svc.Auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			WriteValidationError(w, verr)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, serr.ErrAlreadyExists)
		default:
			h.Log.Logger.Sugar().Errorw("register failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, RegisterResponse{
		Message: "Registration successful",
		Status:  true,
		User:    user,
	})
}

// Login обрабатывает вход пользователя и выдачу access-токена.
//
// Ответы:
//   - 200 OK: успешный вход, в ответе токен;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 401 Unauthorized: неверные учётные данные (токен не выдаётся);
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse "Bad JSON or invalid input"
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, serr.ErrInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Errorw("login failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful",
		Status:  true,
		Token:   token,
	})
}

// ForgotPassword выпускает reset-токен и отправляет его письмом.
//
// Ответ не зависит от того, зарегистрирован ли email, чтобы эндпоинт
// нельзя было использовать для перечисления адресов.
//
// @Summary      Request password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ForgotPasswordRequest true "Forgot password request"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Bad JSON or invalid email"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/forgot_password [post]
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	if err := h.Svc.Auth.ForgotPassword(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		default:
			h.Log.Logger.Sugar().Errorw("forgot password failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{
		Message: "A reset link has been sent to your email",
		Status:  true,
	})
}

// ResetPassword проверяет reset-токен из URL и ставит новый пароль.
//
// Просроченный и битый токены дают разные сообщения (оба 401).
//
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token   path string true "Reset token"
// @Param        request body ResetPasswordRequest true "New password"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Bad JSON"
// @Failure      401 {object} ErrorResponse "Token expired or invalid"
// @Failure      422 {object} ErrorResponse "Validation failed"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/reset_password/{token} [post]
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	err := h.Svc.Auth.ResetPassword(r.Context(), token, req.Password, req.ConfirmPassword)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			WriteValidationError(w, verr)
		case errors.Is(err, serr.ErrTokenExpired):
			WriteError(w, http.StatusUnauthorized, serr.ErrTokenExpired)
		case errors.Is(err, serr.ErrInvalidToken):
			WriteError(w, http.StatusUnauthorized, serr.ErrInvalidToken)
		default:
			h.Log.Logger.Sugar().Errorw("reset password failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{
		Message: "Password updated successfully",
		Status:  true,
	})
}
