// Package service содержит бизнес-логику приложения (yummy-recipes).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
//
// Конвейер каждого защищённого метода один и тот же:
// валидация полей -> проверка уникальности -> обращение к repository.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/achola/yummy-recipes/internal/server/config"
	"github.com/achola/yummy-recipes/internal/server/mail"
	"github.com/achola/yummy-recipes/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users      UsersRepo
	Categories CategoriesRepo
	Recipes    RecipesRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth       *AuthService
	Categories *CategoriesService
	Recipes    *RecipesService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и JWT) и
// RecipesService (дефолты пагинации).
func NewServices(repos Repositories, mailer mail.Mailer, cfg *config.Config) *Services {
	return &Services{
		Auth:       NewAuthService(repos.Users, mailer, cfg),
		Categories: NewCategoriesService(repos.Categories),
		Recipes:    NewRecipesService(repos.Recipes, repos.Categories, cfg.Pagination),
	}
}

// UsersRepo — репозиторий пользователей (auth/register/login/reset).
type UsersRepo interface {
	Create(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// CategoriesRepo — репозиторий категорий (CRUD + проверка уникальности).
type CategoriesRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name, description string) (models.Category, error)
	GetAll(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (models.Category, error)
	Update(ctx context.Context, userID, id uuid.UUID, name, description string) (models.Category, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Exists(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
}

// RecipesRepo — репозиторий рецептов (CRUD + листинг + проверка уникальности).
type RecipesRepo interface {
	Create(ctx context.Context, userID, categoryID uuid.UUID, title, ingredients, steps string) (models.Recipe, error)
	List(ctx context.Context, userID uuid.UUID, q string, limit, offset int) ([]models.Recipe, int, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (models.Recipe, error)
	Update(ctx context.Context, userID, id, categoryID uuid.UUID, title, ingredients, steps string) (models.Recipe, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Exists(ctx context.Context, userID uuid.UUID, title string, excludeID uuid.UUID) (bool, error)
}
