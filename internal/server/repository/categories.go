package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	serr "github.com/achola/yummy-recipes/internal/shared/errors"
	"github.com/achola/yummy-recipes/internal/shared/models"
)

// CategoriesRepository реализует доступ к категориям рецептов (PostgreSQL).
//
// Все выборки ограничены владельцем (user_id): чужая категория для
// пользователя неотличима от несуществующей.
type CategoriesRepository struct {
	db *sql.DB
}

// NewCategoriesRepository создаёт новый экземпляр CategoriesRepository.
func NewCategoriesRepository(db *sql.DB) *CategoriesRepository {
	return &CategoriesRepository{db: db}
}

// Create сохраняет новую категорию пользователя.
//
// Ошибки:
//   - ErrAlreadyExists — имя занято у этого пользователя (23505);
//   - ErrInternal — прочие ошибки БД.
func (r *CategoriesRepository) Create(ctx context.Context, userID uuid.UUID, name, description string) (models.Category, error) {
	c := models.Category{UserID: userID, Name: name, Description: description}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (user_id, name, description)
		 VALUES ($1,$2,$3)
		 RETURNING id, created_at, updated_at`,
		userID, name, description,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return models.Category{}, serr.ErrAlreadyExists
		}
		return models.Category{}, serr.ErrInternal
	}

	return c, nil
}

// GetAll возвращает все категории пользователя (свежие сверху).
func (r *CategoriesRepository) GetAll(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, description, created_at, updated_at
		 FROM categories
		 WHERE user_id=$1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	out := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return out, nil
}

// GetByID возвращает категорию пользователя по id.
func (r *CategoriesRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (models.Category, error) {
	var c models.Category

	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, description, created_at, updated_at
		 FROM categories
		 WHERE id=$1 AND user_id=$2`,
		id, userID,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Category{}, serr.ErrNotFound
		}
		return models.Category{}, serr.ErrInternal
	}

	return c, nil
}

// Update перезаписывает имя и описание категории пользователя.
func (r *CategoriesRepository) Update(ctx context.Context, userID, id uuid.UUID, name, description string) (models.Category, error) {
	var c models.Category

	err := r.db.QueryRowContext(ctx,
		`UPDATE categories
		 SET name=$3, description=$4, updated_at=now()
		 WHERE id=$1 AND user_id=$2
		 RETURNING id, user_id, name, description, created_at, updated_at`,
		id, userID, name, description,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Category{}, serr.ErrNotFound
		}
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return models.Category{}, serr.ErrAlreadyExists
		}
		return models.Category{}, serr.ErrInternal
	}

	return c, nil
}

// Delete удаляет категорию пользователя.
// Рецепты категории удаляются каскадно (FK ON DELETE CASCADE).
func (r *CategoriesRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM categories WHERE id=$1 AND user_id=$2`,
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

// Exists проверяет, занято ли имя категории у пользователя.
// excludeID исключает саму запись при update (для create — uuid.Nil).
func (r *CategoriesRepository) Exists(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM categories
		   WHERE user_id=$1 AND name=$2 AND id<>$3
		 )`,
		userID, name, excludeID,
	).Scan(&exists)

	if err != nil {
		return false, serr.ErrInternal
	}
	return exists, nil
}
