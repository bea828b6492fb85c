// Package models содержит плоские модели данных, общие для сервера и клиента.
//
// Эти структуры используются и в ответах HTTP API, и в слое repository.
// Пароль пользователя наружу не сериализуется.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись пользователя.
//
// Поля:
//   - ID: уникальный идентификатор (UUID)
//   - Username: уникальное имя пользователя (буквы/цифры/пробелы)
//   - Email: уникальный email
//   - PasswordHash: хэш пароля, в JSON не попадает
//   - IsAdmin: флаг администратора; через API не выставляется
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Category — пользовательская группа рецептов.
//
// Name хранится в нижнем регистре; уникальность name — в пределах владельца.
// Удаление категории каскадно удаляет её рецепты.
type Category struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"category_name"`
	Description string    `json:"category_description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Recipe — рецепт пользователя.
//
// Title хранится в нижнем регистре; уникальность title — в пределах владельца.
// CategoryID всегда ссылается на категорию того же пользователя.
type Recipe struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Title       string    `json:"title"`
	Ingredients string    `json:"ingredients"`
	Steps       string    `json:"steps"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Pagination — метаданные постраничного вывода списка рецептов.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}
