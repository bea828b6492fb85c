// В этом файле описаны методы клиента для работы с рецептами.
package api

import (
	"net/url"
	"strconv"
)

// Recipe — рецепт, как его отдаёт сервер.
type Recipe struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Title       string `json:"title"`
	Ingredients string `json:"ingredients"`
	Steps       string `json:"steps"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// RecipeRequest описывает тело запроса создания/обновления рецепта.
type RecipeRequest struct {
	Title       string `json:"title"`
	Ingredients string `json:"ingredients"`
	Steps       string `json:"steps"`
	CategoryID  string `json:"category_id"`
}

// RecipeResponse описывает ответ сервера с одним рецептом.
type RecipeResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
	Recipe  Recipe `json:"recipe"`
}

// Pagination — метаданные страницы из ответа листинга.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// RecipesListResponse описывает страницу рецептов.
type RecipesListResponse struct {
	Recipes    []Recipe   `json:"recipes"`
	Pagination Pagination `json:"pagination"`
}

// CreateRecipe создаёт рецепт на сервере.
func (c *Client) CreateRecipe(token string, req RecipeRequest) (RecipeResponse, error) {
	var resp RecipeResponse
	err := c.PostJSON("/recipe/", req, &resp, token)
	return resp, err
}

// ListRecipes возвращает страницу рецептов.
//
// page и perPage меньше 1 не передаются (сервер подставит дефолты),
// пустой q не передаётся.
func (c *Client) ListRecipes(token string, page, perPage int, q string) (RecipesListResponse, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		params.Set("per_page", strconv.Itoa(perPage))
	}
	if q != "" {
		params.Set("q", q)
	}

	path := "/recipe/"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp RecipesListResponse
	err := c.GetJSON(path, &resp, token)
	return resp, err
}

// GetRecipe возвращает рецепт по id.
func (c *Client) GetRecipe(token, id string) (RecipeResponse, error) {
	var resp RecipeResponse
	err := c.GetJSON("/recipe/"+id, &resp, token)
	return resp, err
}

// UpdateRecipe обновляет рецепт по id.
func (c *Client) UpdateRecipe(token, id string, req RecipeRequest) (RecipeResponse, error) {
	var resp RecipeResponse
	err := c.PutJSON("/recipe/"+id, req, &resp, token)
	return resp, err
}

// DeleteRecipe удаляет рецепт по id.
func (c *Client) DeleteRecipe(token, id string) error {
	return c.DeleteJSON("/recipe/"+id, nil, token)
}
