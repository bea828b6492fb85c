// В этом файле описаны методы клиента для работы с категориями рецептов.
package api

// Category — категория рецептов, как её отдаёт сервер.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"category_name"`
	Description string `json:"category_description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CategoryRequest описывает тело запроса создания/обновления категории.
type CategoryRequest struct {
	Name        string `json:"category_name"`
	Description string `json:"category_description"`
}

// CategoryResponse описывает ответ сервера с одной категорией.
type CategoryResponse struct {
	Message  string   `json:"message"`
	Status   bool     `json:"status"`
	Category Category `json:"category"`
}

// CategoriesListResponse описывает ответ сервера со списком категорий.
type CategoriesListResponse struct {
	Categories []Category `json:"categories"`
}

// CreateCategory создаёт категорию на сервере.
func (c *Client) CreateCategory(token, name, description string) (CategoryResponse, error) {
	var resp CategoryResponse
	err := c.PostJSON("/category/", CategoryRequest{Name: name, Description: description}, &resp, token)
	return resp, err
}

// ListCategories возвращает все категории текущего пользователя.
func (c *Client) ListCategories(token string) (CategoriesListResponse, error) {
	var resp CategoriesListResponse
	err := c.GetJSON("/category/", &resp, token)
	return resp, err
}

// GetCategory возвращает категорию по id.
func (c *Client) GetCategory(token, id string) (CategoryResponse, error) {
	var resp CategoryResponse
	err := c.GetJSON("/category/"+id, &resp, token)
	return resp, err
}

// UpdateCategory обновляет категорию по id.
func (c *Client) UpdateCategory(token, id, name, description string) (CategoryResponse, error) {
	var resp CategoryResponse
	err := c.PutJSON("/category/"+id, CategoryRequest{Name: name, Description: description}, &resp, token)
	return resp, err
}

// DeleteCategory удаляет категорию по id.
func (c *Client) DeleteCategory(token, id string) error {
	return c.DeleteJSON("/category/"+id, nil, token)
}
