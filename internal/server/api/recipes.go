// HTTP-хендлеры CRUD рецептов
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/achola/yummy-recipes/internal/server/middleware"
	"github.com/achola/yummy-recipes/internal/server/service"
	"github.com/achola/yummy-recipes/internal/server/validation"
	serr "github.com/achola/yummy-recipes/internal/shared/errors"
	"github.com/achola/yummy-recipes/internal/shared/models"
)

// RecipeRequest — тело запроса создания/обновления рецепта.
type RecipeRequest struct {
	Title       string    `json:"title"`
	Ingredients string    `json:"ingredients"`
	Steps       string    `json:"steps"`
	CategoryID  uuid.UUID `json:"category_id"`
}

// RecipeResponse — ответ с одним рецептом.
type RecipeResponse struct {
	Message string        `json:"message,omitempty"`
	Status  bool          `json:"status"`
	Recipe  models.Recipe `json:"recipe"`
}

// RecipesListResponse — страница рецептов с метаданными пагинации.
type RecipesListResponse struct {
	Recipes    []models.Recipe   `json:"recipes"`
	Pagination models.Pagination `json:"pagination"`
}

// CreateRecipe создаёт рецепт текущего пользователя.
//
// category_id должен указывать на категорию того же пользователя,
// иначе 404 (чужая категория неотличима от несуществующей).
//
// @Summary      Create recipe
// @Tags         recipe
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body RecipeRequest true "New recipe"
// @Success      201 {object} RecipeResponse
// @Failure      400 {object} ErrorResponse "Bad JSON"
// @Failure      401 {object} ErrorResponse "Missing/expired/invalid token"
// @Failure      404 {object} ErrorResponse "Category does not exist"
// @Failure      409 {object} ErrorResponse "Recipe already exists"
// @Failure      422 {object} ErrorResponse "Validation failed"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /recipe [post]
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req RecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	recipe, err := h.Svc.Recipes.Create(r.Context(), userID, req.CategoryID, req.Title, req.Ingredients, req.Steps)
	if err != nil {
		h.writeRecipeError(w, err, userID)
		return
	}

	WriteJSON(w, http.StatusCreated, RecipeResponse{
		Message: "Successfully added new recipe",
		Status:  true,
		Recipe:  recipe,
	})
}

// ListRecipes возвращает страницу рецептов пользователя.
//
// Параметры запроса:
//   - page: номер страницы, по умолчанию 1;
//   - per_page: размер страницы, по умолчанию из конфига;
//   - q: регистронезависимая подстрока по title.
//
// @Summary      List recipes
// @Tags         recipe
// @Produce      json
// @Security     TokenAuth
// @Param        page     query int    false "Page number"
// @Param        per_page query int    false "Page size"
// @Param        q        query string false "Title substring filter"
// @Success      200 {object} RecipesListResponse
// @Failure      401 {object} ErrorResponse "Missing/expired/invalid token"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /recipe [get]
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	params := service.ListParams{Q: r.URL.Query().Get("q")}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		params.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil {
		params.PerPage = v
	}

	recipes, meta, err := h.Svc.Recipes.List(r.Context(), userID, params)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list recipes failed", "error", err, "user_id", userID.String())
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, RecipesListResponse{Recipes: recipes, Pagination: meta})
}

// GetRecipe возвращает рецепт по id.
//
// @Summary      Get recipe
// @Tags         recipe
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Recipe ID (UUID)"
// @Success      200 {object} RecipeResponse
// @Failure      400 {object} ErrorResponse "Bad id"
// @Failure      401 {object} ErrorResponse "Missing/expired/invalid token"
// @Failure      404 {object} ErrorResponse "Recipe is not available"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /recipe/{id} [get]
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
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

	recipe, err := h.Svc.Recipes.Get(r.Context(), userID, id)
	if err != nil {
		h.writeRecipeError(w, err, userID)
		return
	}

	WriteJSON(w, http.StatusOK, RecipeResponse{Status: true, Recipe: recipe})
}

// UpdateRecipe обновляет поля рецепта.
//
// @Summary      Update recipe
// @Tags         recipe
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id      path string        true "Recipe ID (UUID)"
// @Param        request body RecipeRequest true "Updated recipe"
// @Success      200 {object} RecipeResponse
// @Failure      400 {object} ErrorResponse "Bad JSON or bad id"
// @Failure      401 {object} ErrorResponse "Missing/expired/invalid token"
// @Failure      404 {object} ErrorResponse "Recipe or category not found"
// @Failure      409 {object} ErrorResponse "Recipe title taken"
// @Failure      422 {object} ErrorResponse "Validation failed"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /recipe/{id} [put]
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
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

	var req RecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	recipe, err := h.Svc.Recipes.Update(r.Context(), userID, id, req.CategoryID, req.Title, req.Ingredients, req.Steps)
	if err != nil {
		h.writeRecipeError(w, err, userID)
		return
	}

	WriteJSON(w, http.StatusOK, RecipeResponse{
		Message: "Successfully updated recipe",
		Status:  true,
		Recipe:  recipe,
	})
}

// DeleteRecipe удаляет рецепт пользователя.
//
// @Summary      Delete recipe
// @Tags         recipe
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Recipe ID (UUID)"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Bad id"
// @Failure      401 {object} ErrorResponse "Missing/expired/invalid token"
// @Failure      404 {object} ErrorResponse "Recipe is not available"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /recipe/{id} [delete]
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.Recipes.Delete(r.Context(), userID, id); err != nil {
		h.writeRecipeError(w, err, userID)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{
		Message: "Recipe deleted successfully",
		Status:  true,
	})
}

// writeRecipeError — единый маппинг ошибок рецептов в HTTP-ответ.
func (h *Handler) writeRecipeError(w http.ResponseWriter, err error, userID uuid.UUID) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		WriteValidationError(w, verr)
	case errors.Is(err, serr.ErrAlreadyExists):
		WriteError(w, http.StatusConflict, errors.New("recipe already exists"))
	case errors.Is(err, serr.ErrNotFound):
		WriteError(w, http.StatusNotFound, errors.New("recipe is not available"))
	default:
		h.Log.Logger.Sugar().Errorw("recipe request failed", "error", err, "user_id", userID.String())
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}
