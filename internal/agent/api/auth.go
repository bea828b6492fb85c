// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход и сброс пароля.
package api

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisteredUser — данные созданного пользователя из ответа сервера.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterResponse описывает ответ сервера при успешной регистрации.
type RegisterResponse struct {
	Message string         `json:"message"`
	Status  bool           `json:"status"`
	User    RegisteredUser `json:"user"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает ответ сервера при успешном входе.
//
// Token используется для авторизации запросов к защищённым эндпоинтам
// через заголовок X-Access-Token.
type LoginResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
	Token   string `json:"token"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /auth/register и возвращает RegisterResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(username, email, password string) (RegisterResponse, error) {
	var resp RegisterResponse
	err := c.PostJSON("/auth/register", RegisterRequest{Username: username, Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает access токен.
//
// Метод отправляет POST запрос на /auth/login и возвращает LoginResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.PostJSON("/auth/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// ForgotPassword запрашивает отправку письма со ссылкой сброса пароля.
func (c *Client) ForgotPassword(email string) error {
	return c.PostJSON("/auth/forgot_password", map[string]string{"email": email}, nil, "")
}
