// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные (email/пароль)
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (email/username/категория/рецепт заняты)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден (или принадлежит другому пользователю)
	ErrNotFound = errors.New("not found")
	// Конфликт версий/уникальности (например гонка при create)
	ErrConflict = errors.New("conflict")
)

// ошибки токена — различаем отсутствие, просрочку и битую подпись
var (
	// Токен не передан в заголовке X-Access-Token
	ErrMissingToken = errors.New("missing access token")
	// Токен просрочен
	ErrTokenExpired = errors.New("token expired")
	// Подпись/формат/claims токена некорректны
	ErrInvalidToken = errors.New("invalid token")
)
