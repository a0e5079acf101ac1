package service

import (
	"context"
	"strings"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
)

// UsersService реализует регистрацию пользователей.
type UsersService struct {
	repo   UsersRepo
	hasher crypto.Hasher
}

// NewUsersService создаёт UsersService.
func NewUsersService(repo UsersRepo, hasher crypto.Hasher) *UsersService {
	return &UsersService{repo: repo, hasher: hasher}
}

// Create регистрирует пользователя. Пароль сохраняется только в виде хэша.
//
// Валидация полей выполняется до вызова (UserRules), здесь повторно
// проверяется только то, без чего запись невозможна.
//
// Ошибки:
//   - *ValidationError — пустые обязательные поля
//   - ErrAlreadyExists — email уже занят
//   - ErrInternal — ошибка хэширования или хранилища
func (s *UsersService) Create(ctx context.Context, u models.NewUser) (models.Identity, error) {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.EmailAddress = strings.TrimSpace(u.EmailAddress)

	if err := Validate(Payload{
		"firstName":    u.FirstName,
		"lastName":     u.LastName,
		"emailAddress": u.EmailAddress,
		"password":     u.Password,
	}, UserRules); err != nil {
		return models.Identity{}, err
	}

	hash, err := s.hasher.Hash(u.Password)
	if err != nil {
		return models.Identity{}, serr.ErrInternal
	}

	// клиент ушёл — не пишем
	if err := ctx.Err(); err != nil {
		return models.Identity{}, err
	}

	created, err := s.repo.Create(ctx, models.User{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
		PasswordHash: hash,
	})
	if err != nil {
		return models.Identity{}, err
	}

	return created.Identity(), nil
}
