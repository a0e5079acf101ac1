// Package models содержит модели HTTP API, общие для сервера и CLI-клиента.
//
// Ни одна модель в этом пакете не содержит поля пароля в ответах:
// пароль присутствует только во входящем CreateUserRequest.
package models

// User — публичное представление пользователя.
//
// Используется в:
//
//	GET /api/users
//	GET /api/courses (вложенный владелец курса)
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// Course — публичное представление курса вместе с владельцем.
//
// Поля:
//   - UserID: идентификатор владельца (внешний ключ)
//   - User: владелец курса без пароля
type Course struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
	UserID          string  `json:"userId"`
	User            *User   `json:"user,omitempty"`
}

// CreateUserRequest — тело запроса POST /api/users.
type CreateUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// CourseRequest — тело запросов POST /api/courses и PUT /api/courses/{id}.
//
// userId в теле игнорируется: владельцем всегда становится аутентифицированный пользователь.
type CourseRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

// MessageResponse — стандартный формат ответа с одним сообщением
// (ошибки 401/403/404/500 и приветствие на "/").
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorsResponse — ответ со списком ошибок валидации (400/409).
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// HealthResponse — ответ GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
