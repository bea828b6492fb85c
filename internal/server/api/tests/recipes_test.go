package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/achola/yummy-recipes/internal/server/api"
	"github.com/achola/yummy-recipes/internal/server/service"
	svcmocks "github.com/achola/yummy-recipes/internal/server/service/mocks"
	serr "github.com/achola/yummy-recipes/internal/shared/errors"
	"github.com/achola/yummy-recipes/internal/shared/logger"
	"github.com/achola/yummy-recipes/internal/shared/models"
)

// helper: создаёт Handler с моками RecipesRepo и CategoriesRepo
func newRecipesHandler(t *testing.T) (*api.Handler, *svcmocks.MockRecipesRepo, *svcmocks.MockCategoriesRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := svcmocks.NewMockRecipesRepo(ctrl)
	categories := svcmocks.NewMockCategoriesRepo(ctrl)

	cfg := newTestConfig()
	svc := &service.Services{
		Recipes: service.NewRecipesService(repo, categories, cfg.Pagination),
	}

	return api.NewHandler(svc, logger.NewHTTPLogger(), nil, nil), repo, categories
}

func TestHandler_CreateRecipe_Success(t *testing.T) {
	t.Parallel()

	h, repo, categories := newRecipesHandler(t)

	userID := uuid.New()
	categoryID := uuid.New()
	want := models.Recipe{ID: uuid.New(), Title: "espresso", CategoryID: categoryID}

	categories.EXPECT().
		GetByID(gomock.Any(), userID, categoryID).
		Return(models.Category{ID: categoryID, Name: "drinks"}, nil)
	repo.EXPECT().Exists(gomock.Any(), userID, "espresso", uuid.Nil).Return(false, nil)
	repo.EXPECT().
		Create(gomock.Any(), userID, categoryID, "espresso", "ground coffee and water", "brew under pressure").
		Return(want, nil)

	body, _ := json.Marshal(api.RecipeRequest{
		Title:       "Espresso",
		Ingredients: "ground coffee and water",
		Steps:       "brew under pressure",
		CategoryID:  categoryID,
	})
	req := authed(httptest.NewRequest(http.MethodPost, "/recipe/", bytes.NewReader(body)), userID)
	rec := httptest.NewRecorder()

	h.CreateRecipe(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp api.RecipeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Recipe.Title != "espresso" {
		t.Fatalf("expected normalized title, got %q", resp.Recipe.Title)
	}
}

func TestHandler_CreateRecipe_Unauthorized(t *testing.T) {
	t.Parallel()

	h, _, _ := newRecipesHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/recipe/", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()

	h.CreateRecipe(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// Чужая категория даёт 404 ещё до проверки уникальности title
func TestHandler_CreateRecipe_ForeignCategory(t *testing.T) {
	t.Parallel()

	h, _, categories := newRecipesHandler(t)

	userID := uuid.New()
	categoryID := uuid.New()

	categories.EXPECT().
		GetByID(gomock.Any(), userID, categoryID).
		Return(models.Category{}, serr.ErrNotFound)

	body, _ := json.Marshal(api.RecipeRequest{
		Title:       "espresso",
		Ingredients: "ground coffee",
		Steps:       "brew it",
		CategoryID:  categoryID,
	})
	req := authed(httptest.NewRequest(http.MethodPost, "/recipe/", bytes.NewReader(body)), userID)
	rec := httptest.NewRecorder()

	h.CreateRecipe(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandler_CreateRecipe_ValidationFailed(t *testing.T) {
	t.Parallel()

	h, _, _ := newRecipesHandler(t)

	body, _ := json.Marshal(api.RecipeRequest{})
	req := authed(httptest.NewRequest(http.MethodPost, "/recipe/", bytes.NewReader(body)), uuid.New())
	rec := httptest.NewRecorder()

	h.CreateRecipe(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, field := range []string{"title", "ingredients", "steps", "category_id"} {
		if len(resp.Errors[field]) == 0 {
			t.Fatalf("expected errors for field %q, got %v", field, resp.Errors)
		}
	}
}

func TestHandler_CreateRecipe_Conflict(t *testing.T) {
	t.Parallel()

	h, repo, categories := newRecipesHandler(t)

	userID := uuid.New()
	categoryID := uuid.New()

	categories.EXPECT().
		GetByID(gomock.Any(), userID, categoryID).
		Return(models.Category{ID: categoryID}, nil)
	repo.EXPECT().Exists(gomock.Any(), userID, "espresso", uuid.Nil).Return(true, nil)

	body, _ := json.Marshal(api.RecipeRequest{
		Title:       "espresso",
		Ingredients: "ground coffee",
		Steps:       "brew it",
		CategoryID:  categoryID,
	})
	req := authed(httptest.NewRequest(http.MethodPost, "/recipe/", bytes.NewReader(body)), userID)
	rec := httptest.NewRecorder()

	h.CreateRecipe(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "recipe already exists" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

// Параметры запроса уходят в сервис, метаданные приходят в ответ
func TestHandler_ListRecipes_Success(t *testing.T) {
	t.Parallel()

	h, repo, _ := newRecipesHandler(t)

	userID := uuid.New()
	rows := []models.Recipe{
		{ID: uuid.New(), Title: "espresso"},
		{ID: uuid.New(), Title: "espresso tonic"},
	}

	repo.EXPECT().List(gomock.Any(), userID, "espresso", 10, 10).Return(rows, 12, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/recipe/?page=2&per_page=10&q=Espresso", nil), userID)
	rec := httptest.NewRecorder()

	h.ListRecipes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp api.RecipesListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(resp.Recipes))
	}
	if resp.Pagination.Total != 12 || resp.Pagination.Pages != 2 {
		t.Fatalf("unexpected pagination %+v", resp.Pagination)
	}
}

// Нечисловые и отсутствующие параметры тихо приводятся к дефолтам
func TestHandler_ListRecipes_BadParams(t *testing.T) {
	t.Parallel()

	h, repo, _ := newRecipesHandler(t)

	userID := uuid.New()

	repo.EXPECT().List(gomock.Any(), userID, "", 10, 0).Return([]models.Recipe{}, 0, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/recipe/?page=abc&per_page=-5", nil), userID)
	rec := httptest.NewRecorder()

	h.ListRecipes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestHandler_GetRecipe_Success(t *testing.T) {
	t.Parallel()

	h, repo, _ := newRecipesHandler(t)

	userID := uuid.New()
	id := uuid.New()
	want := models.Recipe{ID: id, Title: "espresso"}

	repo.EXPECT().GetByID(gomock.Any(), userID, id).Return(want, nil)

	r := chi.NewRouter()
	r.Get("/recipe/{id}", h.GetRecipe)

	req := authed(httptest.NewRequest(http.MethodGet, "/recipe/"+id.String(), nil), userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

// Чужой рецепт неотличим от несуществующего
func TestHandler_GetRecipe_NotFound(t *testing.T) {
	t.Parallel()

	h, repo, _ := newRecipesHandler(t)

	userID := uuid.New()
	id := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), userID, id).Return(models.Recipe{}, serr.ErrNotFound)

	r := chi.NewRouter()
	r.Get("/recipe/{id}", h.GetRecipe)

	req := authed(httptest.NewRequest(http.MethodGet, "/recipe/"+id.String(), nil), userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "recipe is not available" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHandler_UpdateRecipe_Success(t *testing.T) {
	t.Parallel()

	h, repo, categories := newRecipesHandler(t)

	userID := uuid.New()
	id := uuid.New()
	categoryID := uuid.New()
	want := models.Recipe{ID: id, Title: "espresso"}

	categories.EXPECT().
		GetByID(gomock.Any(), userID, categoryID).
		Return(models.Category{ID: categoryID}, nil)
	repo.EXPECT().Exists(gomock.Any(), userID, "espresso", id).Return(false, nil)
	repo.EXPECT().
		Update(gomock.Any(), userID, id, categoryID, "espresso", "fresh grounds", "brew hotter").
		Return(want, nil)

	body, _ := json.Marshal(api.RecipeRequest{
		Title:       "Espresso",
		Ingredients: "fresh grounds",
		Steps:       "brew hotter",
		CategoryID:  categoryID,
	})

	r := chi.NewRouter()
	r.Put("/recipe/{id}", h.UpdateRecipe)

	req := authed(httptest.NewRequest(http.MethodPut, "/recipe/"+id.String(), bytes.NewReader(body)), userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestHandler_UpdateRecipe_BadID(t *testing.T) {
	t.Parallel()

	h, _, _ := newRecipesHandler(t)

	r := chi.NewRouter()
	r.Put("/recipe/{id}", h.UpdateRecipe)

	req := authed(httptest.NewRequest(http.MethodPut, "/recipe/not-a-uuid", bytes.NewBufferString("{}")), uuid.New())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_DeleteRecipe_Success(t *testing.T) {
	t.Parallel()

	h, repo, _ := newRecipesHandler(t)

	userID := uuid.New()
	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), userID, id).Return(nil)

	r := chi.NewRouter()
	r.Delete("/recipe/{id}", h.DeleteRecipe)

	req := authed(httptest.NewRequest(http.MethodDelete, "/recipe/"+id.String(), nil), userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var resp api.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Recipe deleted successfully" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHandler_DeleteRecipe_NotFound(t *testing.T) {
	t.Parallel()

	h, repo, _ := newRecipesHandler(t)

	userID := uuid.New()
	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), userID, id).Return(serr.ErrNotFound)

	r := chi.NewRouter()
	r.Delete("/recipe/{id}", h.DeleteRecipe)

	req := authed(httptest.NewRequest(http.MethodDelete, "/recipe/"+id.String(), nil), userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}
