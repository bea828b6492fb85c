package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/achola/yummy-recipes/internal/server/config"
	"github.com/achola/yummy-recipes/internal/server/validation"
	serr "github.com/achola/yummy-recipes/internal/shared/errors"
	"github.com/achola/yummy-recipes/internal/shared/models"
	"github.com/achola/yummy-recipes/internal/shared/utils"
)

// RecipesService реализует бизнес-логику рецептов.
//
// Инварианты:
//   - title уникален в пределах владельца;
//   - category_id всегда ссылается на категорию того же пользователя
//     (проверяется перед create/update).
type RecipesService struct {
	repo       RecipesRepo
	categories CategoriesRepo
	pages      config.PaginationConfig
}

// ListParams — параметры листинга рецептов из query string.
type ListParams struct {
	Page    int
	PerPage int
	Q       string
}

// NewRecipesService создаёт новый RecipesService.
func NewRecipesService(repo RecipesRepo, categories CategoriesRepo, pages config.PaginationConfig) *RecipesService {
	return &RecipesService{repo: repo, categories: categories, pages: pages}
}

// validateRecipe прогоняет поля рецепта через единый конвейер проверок.
func validateRecipe(title, ingredients, steps string, categoryID uuid.UUID) *validation.Error {
	verr := validation.NewError()

	if title == "" {
		verr.Add("title", "Recipe title is required")
	} else {
		if validation.HasSpecialCharacter(title) {
			verr.Add("title", "Recipe title should not contain special characters")
		}
		if !validation.LongEnough(title, validation.MinRecipeTitleLen) {
			verr.Add("title", "Recipe title should be more than 3 characters long")
		}
	}

	if ingredients == "" {
		verr.Add("ingredients", "Recipe ingredients are required")
	} else {
		if validation.HasSpecialCharacter(ingredients) {
			verr.Add("ingredients", "Recipe ingredients should not contain special characters")
		}
		if !validation.LongEnough(ingredients, validation.MinRecipeTextLen) {
			verr.Add("ingredients", "We need ingredients that are more than 3 characters")
		}
	}

	if steps == "" {
		verr.Add("steps", "Recipe steps are required")
	} else {
		if validation.HasSpecialCharacter(steps) {
			verr.Add("steps", "Recipe steps should not contain special characters")
		}
		if !validation.LongEnough(steps, validation.MinRecipeTextLen) {
			verr.Add("steps", "We need to cook something more than 3 characters")
		}
	}

	if categoryID == uuid.Nil {
		verr.Add("category_id", "Category id is required")
	}

	return verr
}

// Create создаёт рецепт пользователя.
//
// Ошибки:
//   - *validation.Error — невалидные поля;
//   - ErrNotFound — category_id не принадлежит пользователю;
//   - ErrAlreadyExists — title занят у этого пользователя;
//   - ErrInternal — ошибка хранилища.
func (s *RecipesService) Create(ctx context.Context, userID, categoryID uuid.UUID, title, ingredients, steps string) (models.Recipe, error) {
	title = utils.Normalize(title)
	ingredients = strings.TrimSpace(ingredients)
	steps = strings.TrimSpace(steps)

	if verr := validateRecipe(title, ingredients, steps, categoryID); !verr.Empty() {
		return models.Recipe{}, verr
	}

	// категория должна существовать и принадлежать автору рецепта
	if _, err := s.categories.GetByID(ctx, userID, categoryID); err != nil {
		return models.Recipe{}, err
	}

	if taken, err := s.repo.Exists(ctx, userID, title, uuid.Nil); err != nil {
		return models.Recipe{}, err
	} else if taken {
		return models.Recipe{}, serr.ErrAlreadyExists
	}

	return s.repo.Create(ctx, userID, categoryID, title, ingredients, steps)
}

// List возвращает страницу рецептов пользователя.
//
// page < 1 приводится к 1, per_page вне [1, max] — к дефолту из конфига.
// q матчится регистронезависимо по title.
func (s *RecipesService) List(ctx context.Context, userID uuid.UUID, p ListParams) ([]models.Recipe, models.Pagination, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 || p.PerPage > s.pages.MaxPerPage {
		p.PerPage = s.pages.DefaultPerPage
	}
	q := utils.Normalize(p.Q)

	offset := (p.Page - 1) * p.PerPage

	recipes, total, err := s.repo.List(ctx, userID, q, p.PerPage, offset)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	pages := total / p.PerPage
	if total%p.PerPage != 0 {
		pages++
	}

	meta := models.Pagination{
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   total,
		Pages:   pages,
	}
	return recipes, meta, nil
}

// Get возвращает рецепт пользователя по id.
func (s *RecipesService) Get(ctx context.Context, userID, id uuid.UUID) (models.Recipe, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Update перезаписывает поля рецепта.
//
// Те же проверки, что и у Create; уникальность title — с исключением
// самой записи.
func (s *RecipesService) Update(ctx context.Context, userID, id, categoryID uuid.UUID, title, ingredients, steps string) (models.Recipe, error) {
	title = utils.Normalize(title)
	ingredients = strings.TrimSpace(ingredients)
	steps = strings.TrimSpace(steps)

	if verr := validateRecipe(title, ingredients, steps, categoryID); !verr.Empty() {
		return models.Recipe{}, verr
	}

	if _, err := s.categories.GetByID(ctx, userID, categoryID); err != nil {
		return models.Recipe{}, err
	}

	if taken, err := s.repo.Exists(ctx, userID, title, id); err != nil {
		return models.Recipe{}, err
	} else if taken {
		return models.Recipe{}, serr.ErrAlreadyExists
	}

	return s.repo.Update(ctx, userID, id, categoryID, title, ingredients, steps)
}

// Delete удаляет рецепт пользователя.
func (s *RecipesService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
