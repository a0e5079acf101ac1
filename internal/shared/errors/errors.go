// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import (
	"errors"
	"strings"
)

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// нарушено ограничение хранилища (not null, внешний ключ)
	ErrConstraint = errors.New("constraint violation")
)

// ошибки аутентификации и авторизации
var (
	// заголовок Authorization отсутствует
	ErrMissingCredentials = errors.New("missing credentials")
	// заголовок есть, но это не Basic или base64 битый
	ErrMalformedCredentials = errors.New("malformed credentials")
	// пользователь с таким email не найден
	ErrUserNotFound = errors.New("user not found")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Неавторизован. Во внешний мир уходит только эта ошибка
	ErrUnauthorized = errors.New("unauthorized")
	// аутентифицирован, но не владелец ресурса
	ErrForbidden = errors.New("forbidden")
)

// ValidationError содержит все нарушенные правила валидации в порядке их объявления.
//
// errors.Is(err, ErrInvalidInput) для неё возвращает true.
type ValidationError struct {
	Messages []string
}

// NewValidationError создаёт ValidationError из списка сообщений.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// IsAuthFailure сообщает, относится ли ошибка к провалу аутентификации.
// Все такие ошибки снаружи выглядят одинаково (401 Access Denied).
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrMalformedCredentials) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUnauthorized)
}
