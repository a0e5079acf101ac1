// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — запись пользователя в хранилище.
//
// PasswordHash никогда не сериализуется: для ответов используется Identity.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	EmailAddress string
	PasswordHash string `json:"-"`
	CreatedAt    time.Time
}

// Identity — аутентифицированный пользователь без пароля.
type Identity struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	EmailAddress string
}

// Identity отбрасывает хэш пароля.
func (u User) Identity() Identity {
	return Identity{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}

// NewUser — поля для создания пользователя. Password здесь ещё plaintext,
// в хранилище уходит только хэш.
type NewUser struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}
