package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	serr "github.com/achola/yummy-recipes/internal/shared/errors"
	"github.com/achola/yummy-recipes/internal/shared/models"
)

// RecipesRepository реализует доступ к рецептам (PostgreSQL).
//
// Как и у категорий, все запросы ограничены владельцем.
type RecipesRepository struct {
	db *sql.DB
}

// NewRecipesRepository создаёт новый экземпляр RecipesRepository.
func NewRecipesRepository(db *sql.DB) *RecipesRepository {
	return &RecipesRepository{db: db}
}

// Create сохраняет новый рецепт пользователя.
//
// Ошибки:
//   - ErrAlreadyExists — заголовок занят у этого пользователя (23505);
//   - ErrNotFound — category_id не существует (23503, FK);
//   - ErrInternal — прочие ошибки БД.
func (r *RecipesRepository) Create(ctx context.Context, userID, categoryID uuid.UUID, title, ingredients, steps string) (models.Recipe, error) {
	rec := models.Recipe{UserID: userID, CategoryID: categoryID, Title: title, Ingredients: ingredients, Steps: steps}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO recipes (user_id, category_id, title, ingredients, steps)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING id, created_at, updated_at`,
		userID, categoryID, title, ingredients, steps,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			switch pgErr.Code {
			case "23505": // unique_violation
				return models.Recipe{}, serr.ErrAlreadyExists
			case "23503": // foreign_key_violation
				return models.Recipe{}, serr.ErrNotFound
			}
		}
		return models.Recipe{}, serr.ErrInternal
	}

	return rec, nil
}

// List возвращает страницу рецептов пользователя и общее число совпадений.
//
// q — регистронезависимая подстрока по title; пустая строка отключает фильтр.
// limit/offset валидируются сервисным слоем.
func (r *RecipesRepository) List(ctx context.Context, userID uuid.UUID, q string, limit, offset int) ([]models.Recipe, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM recipes
		 WHERE user_id=$1 AND ($2='' OR title ILIKE '%'||$2||'%')`,
		userID, q,
	).Scan(&total)
	if err != nil {
		return nil, 0, serr.ErrInternal
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, category_id, title, ingredients, steps, created_at, updated_at
		 FROM recipes
		 WHERE user_id=$1 AND ($2='' OR title ILIKE '%'||$2||'%')
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		userID, q, limit, offset,
	)
	if err != nil {
		return nil, 0, serr.ErrInternal
	}
	defer rows.Close()

	out := make([]models.Recipe, 0)
	for rows.Next() {
		var rec models.Recipe
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CategoryID, &rec.Title, &rec.Ingredients, &rec.Steps, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, 0, serr.ErrInternal
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, serr.ErrInternal
	}

	return out, total, nil
}

// GetByID возвращает рецепт пользователя по id.
func (r *RecipesRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (models.Recipe, error) {
	var rec models.Recipe

	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, category_id, title, ingredients, steps, created_at, updated_at
		 FROM recipes
		 WHERE id=$1 AND user_id=$2`,
		id, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.CategoryID, &rec.Title, &rec.Ingredients, &rec.Steps, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Recipe{}, serr.ErrNotFound
		}
		return models.Recipe{}, serr.ErrInternal
	}

	return rec, nil
}

// Update перезаписывает поля рецепта пользователя.
func (r *RecipesRepository) Update(ctx context.Context, userID, id, categoryID uuid.UUID, title, ingredients, steps string) (models.Recipe, error) {
	var rec models.Recipe

	err := r.db.QueryRowContext(ctx,
		`UPDATE recipes
		 SET category_id=$3, title=$4, ingredients=$5, steps=$6, updated_at=now()
		 WHERE id=$1 AND user_id=$2
		 RETURNING id, user_id, category_id, title, ingredients, steps, created_at, updated_at`,
		id, userID, categoryID, title, ingredients, steps,
	).Scan(&rec.ID, &rec.UserID, &rec.CategoryID, &rec.Title, &rec.Ingredients, &rec.Steps, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Recipe{}, serr.ErrNotFound
		}
		if pgErr, ok := err.(*pgconn.PgError); ok {
			switch pgErr.Code {
			case "23505":
				return models.Recipe{}, serr.ErrAlreadyExists
			case "23503":
				return models.Recipe{}, serr.ErrNotFound
			}
		}
		return models.Recipe{}, serr.ErrInternal
	}

	return rec, nil
}

// Delete удаляет рецепт пользователя.
func (r *RecipesRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM recipes WHERE id=$1 AND user_id=$2`,
		id, userID,
	)
	if err != nil {
		return serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if affected == 0 {
		return serr.ErrNotFound
	}
	return nil
}

// Exists проверяет, занят ли заголовок рецепта у пользователя.
// excludeID исключает саму запись при update (для create — uuid.Nil).
func (r *RecipesRepository) Exists(ctx context.Context, userID uuid.UUID, title string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM recipes
		   WHERE user_id=$1 AND title=$2 AND id<>$3
		 )`,
		userID, title, excludeID,
	).Scan(&exists)

	if err != nil {
		return false, serr.ErrInternal
	}
	return exists, nil
}
