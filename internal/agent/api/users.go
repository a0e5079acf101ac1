// Методы клиента для /api/users: регистрация и текущий пользователь.
package api

import (
	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

// Register регистрирует пользователя. Сервер отвечает 201 без тела.
func (c *Client) Register(req apimodels.CreateUserRequest) error {
	_, err := c.PostJSON("/api/users", req, nil, nil)
	return err
}

// Me возвращает пользователя, которому принадлежат учётные данные.
func (c *Client) Me(auth Credentials) (apimodels.User, error) {
	var resp apimodels.User
	err := c.GetJSON("/api/users", &resp, &auth)
	return resp, err
}
