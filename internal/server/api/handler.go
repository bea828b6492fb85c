// Package api реализует HTTP-слой сервера yummy-recipes.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - подключение middleware (логирование, проверка токена).
//
// Контракт ответа: {"message": ..., "status": bool} плюс полезная нагрузка
// ресурса; ошибки валидации дополняются полем "errors" (карта по полям).
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/achola/yummy-recipes/internal/server/middleware"
	"github.com/achola/yummy-recipes/internal/server/service"
	"github.com/achola/yummy-recipes/internal/server/validation"
	"github.com/achola/yummy-recipes/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки токена и middleware авторизации;
//   - DB: подключение к базе (нужно только health-check'у).
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
	DB       *sql.DB
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier, db *sql.DB) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
		DB:       db,
	}
}

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Message string              `json:"message"`
	Status  bool                `json:"status"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// MessageResponse — ответ без полезной нагрузки (delete, reset и т.п.).
type MessageResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

// WriteJSON сериализует ответ с нужным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError пишет ошибку в формате {"message": ..., "status": false}.
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, ErrorResponse{Message: err.Error()})
}

// WriteValidationError пишет 422 с картой ошибок по полям.
func WriteValidationError(w http.ResponseWriter, verr *validation.Error) {
	WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Message: "Validation failed",
		Errors:  verr.Fields,
	})
}

// Ping проверяет доступность сервиса и базы данных.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} api.MessageResponse
// @Failure      500 {object} api.ErrorResponse "Database unreachable"
// @Router       /ping [get]
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		h.Log.Logger.Sugar().Errorw("health check failed", "error", err)
		WriteError(w, http.StatusInternalServerError, err)
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "pong", Status: true})
}
