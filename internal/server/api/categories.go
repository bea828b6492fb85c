// HTTP-хендлеры CRUD категорий
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/achola/yummy-recipes/internal/server/middleware"
	"github.com/achola/yummy-recipes/internal/server/validation"
	serr "github.com/achola/yummy-recipes/internal/shared/errors"
	"github.com/achola/yummy-recipes/internal/shared/models"
)

// CategoryRequest — тело запроса создания/обновления категории.
type CategoryRequest struct {
	CategoryName        string `json:"category_name"`
	CategoryDescription string `json:"category_description"`
}

// CategoryResponse — ответ с одной категорией.
type CategoryResponse struct {
	Message  string          `json:"message,omitempty"`
	Status   bool            `json:"status"`
	Category models.Category `json:"category"`
}

// CategoriesListResponse — ответ со списком категорий пользователя.
type CategoriesListResponse struct {
	Categories []models.Category `json:"categories"`
}

// CreateCategory создаёт категорию текущего пользователя.
//
// Имя категории нормализуется (нижний регистр) и должно быть уникально
// среди категорий автора.
//
// @Summary      Create category
// @Tags         category
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body CategoryRequest true "New category"
// @Success      201 {object} CategoryResponse
// @Failure      400 {object} ErrorResponse "Bad JSON"
// @Failure      401 {object} ErrorResponse "Missing/expired/invalid token"
// @Failure      409 {object} ErrorResponse "Category already exists"
// @Failure      422 {object} ErrorResponse "Validation failed"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /category [post]
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	category, err := h.Svc.Categories.Create(r.Context(), userID, req.CategoryName, req.CategoryDescription)
	if err != nil {
		h.writeCategoryError(w, err, userID)
		return
	}

	WriteJSON(w, http.StatusCreated, CategoryResponse{
		Message:  "Successfully added new category",
		Status:   true,
		Category: category,
	})
}

// ListCategories возвращает все категории текущего пользователя.
//
// @Summary      List categories
// @Tags         category
// @Produce      json
// @Security     TokenAuth
// @Success      200 {object} CategoriesListResponse
// @Failure      401 {object} ErrorResponse "Missing/expired/invalid token"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /category [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	categories, err := h.Svc.Categories.List(r.Context(), userID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list categories failed", "error", err, "user_id", userID.String())
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, CategoriesListResponse{Categories: categories})
}

// GetCategory возвращает категорию по id.
//
// Чужая категория неотличима от несуществующей: в обоих случаях 404.
//
// @Summary      Get category
// @Tags         category
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Category ID (UUID)"
// @Success      200 {object} CategoryResponse
// @Failure      400 {object} ErrorResponse "Bad id"
// @Failure      401 {object} ErrorResponse "Missing/expired/invalid token"
// @Failure      404 {object} ErrorResponse "Category does not exist"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /category/{id} [get]
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	category, err := h.Svc.Categories.Get(r.Context(), userID, id)
	if err != nil {
		h.writeCategoryError(w, err, userID)
		return
	}

	WriteJSON(w, http.StatusOK, CategoryResponse{Status: true, Category: category})
}

// UpdateCategory обновляет имя и описание категории.
//
// @Summary      Update category
// @Tags         category
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id      path string          true "Category ID (UUID)"
// @Param        request body CategoryRequest true "Updated category"
// @Success      200 {object} CategoryResponse
// @Failure      400 {object} ErrorResponse "Bad JSON or bad id"
// @Failure      401 {object} ErrorResponse "Missing/expired/invalid token"
// @Failure      404 {object} ErrorResponse "Category does not exist"
// @Failure      409 {object} ErrorResponse "Category name taken"
// @Failure      422 {object} ErrorResponse "Validation failed"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /category/{id} [put]
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	category, err := h.Svc.Categories.Update(r.Context(), userID, id, req.CategoryName, req.CategoryDescription)
	if err != nil {
		h.writeCategoryError(w, err, userID)
		return
	}

	WriteJSON(w, http.StatusOK, CategoryResponse{
		Message:  "Successfully updated category",
		Status:   true,
		Category: category,
	})
}

// DeleteCategory удаляет категорию вместе с её рецептами.
//
// @Summary      Delete category
// @Tags         category
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Category ID (UUID)"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Bad id"
// @Failure      401 {object} ErrorResponse "Missing/expired/invalid token"
// @Failure      404 {object} ErrorResponse "Category does not exist"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /category/{id} [delete]
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	if err := h.Svc.Categories.Delete(r.Context(), userID, id); err != nil {
		h.writeCategoryError(w, err, userID)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{
		Message: "Category successfully deleted",
		Status:  true,
	})
}

// writeCategoryError — единый маппинг ошибок категорий в HTTP-ответ.
func (h *Handler) writeCategoryError(w http.ResponseWriter, err error, userID uuid.UUID) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		WriteValidationError(w, verr)
	case errors.Is(err, serr.ErrAlreadyExists):
		WriteError(w, http.StatusConflict, errors.New("category already exists"))
	case errors.Is(err, serr.ErrNotFound):
		WriteError(w, http.StatusNotFound, errors.New("category does not exist"))
	default:
		h.Log.Logger.Sugar().Errorw("category request failed", "error", err, "user_id", userID.String())
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}
