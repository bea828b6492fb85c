package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/achola/yummy-recipes/internal/server/validation"
	serr "github.com/achola/yummy-recipes/internal/shared/errors"
	"github.com/achola/yummy-recipes/internal/shared/models"
	"github.com/achola/yummy-recipes/internal/shared/utils"
)

// CategoriesService реализует бизнес-логику категорий рецептов.
//
// Имя категории нормализуется (трим + нижний регистр) и уникально
// в пределах владельца.
type CategoriesService struct {
	repo CategoriesRepo
}

// NewCategoriesService создаёт новый CategoriesService.
func NewCategoriesService(repo CategoriesRepo) *CategoriesService {
	return &CategoriesService{repo: repo}
}

// validateCategory прогоняет имя и описание через единый конвейер проверок.
func validateCategory(name, description string) *validation.Error {
	verr := validation.NewError()

	if name == "" {
		verr.Add("category_name", "Category name is required")
	} else {
		if validation.HasSpecialCharacter(name) {
			verr.Add("category_name", "Category name should not contain special characters")
		}
		if !validation.LongEnough(name, validation.MinCategoryNameLen) {
			verr.Add("category_name", "Category name should be at least 5 characters")
		}
	}

	if description == "" {
		verr.Add("category_description", "Category description is required")
	} else if validation.HasSpecialCharacter(description) {
		verr.Add("category_description", "Category description should not contain special characters")
	}

	return verr
}

// Create создаёт категорию пользователя.
//
// Ошибки:
//   - *validation.Error — невалидные поля;
//   - ErrAlreadyExists — имя занято у этого пользователя;
//   - ErrInternal — ошибка хранилища.
func (s *CategoriesService) Create(ctx context.Context, userID uuid.UUID, name, description string) (models.Category, error) {
	name = utils.Normalize(name)
	description = strings.TrimSpace(description)

	if verr := validateCategory(name, description); !verr.Empty() {
		return models.Category{}, verr
	}

	if taken, err := s.repo.Exists(ctx, userID, name, uuid.Nil); err != nil {
		return models.Category{}, err
	} else if taken {
		return models.Category{}, serr.ErrAlreadyExists
	}

	return s.repo.Create(ctx, userID, name, description)
}

// List возвращает все категории пользователя.
func (s *CategoriesService) List(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	return s.repo.GetAll(ctx, userID)
}

// Get возвращает категорию пользователя по id.
func (s *CategoriesService) Get(ctx context.Context, userID, id uuid.UUID) (models.Category, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Update перезаписывает имя и описание категории.
//
// Уникальность имени проверяется с исключением самой записи,
// иначе update без смены имени падал бы на собственном дубликате.
func (s *CategoriesService) Update(ctx context.Context, userID, id uuid.UUID, name, description string) (models.Category, error) {
	name = utils.Normalize(name)
	description = strings.TrimSpace(description)

	if verr := validateCategory(name, description); !verr.Empty() {
		return models.Category{}, verr
	}

	if taken, err := s.repo.Exists(ctx, userID, name, id); err != nil {
		return models.Category{}, err
	} else if taken {
		return models.Category{}, serr.ErrAlreadyExists
	}

	return s.repo.Update(ctx, userID, id, name, description)
}

// Delete удаляет категорию вместе с её рецептами (каскад в БД).
func (s *CategoriesService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
