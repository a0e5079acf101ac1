package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
)

// AuthService проверяет пару email/пароль по хранилищу пользователей.
//
// Ответственность:
//   - поиск ровно одного пользователя по email
//   - сравнение пароля с хэшем (argon2id/bcrypt, постоянное время)
//   - различение причин отказа для логов (ErrUserNotFound / ErrInvalidCredentials)
//
// Наружу обе причины уходят одинаковым 401, это делает api слой.
type AuthService struct {
	users  UsersRepo
	hasher crypto.Hasher

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService создаёт AuthService.
func NewAuthService(users UsersRepo, hasher crypto.Hasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Verify возвращает Identity пользователя, если пароль подошёл.
//
// Ошибки:
//   - ErrUserNotFound — email не зарегистрирован
//   - ErrInvalidCredentials — пароль не совпал
//   - ErrInternal — ошибка хранилища или битый хэш
func (s *AuthService) Verify(ctx context.Context, identifier, secret string) (models.Identity, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || secret == "" {
		return models.Identity{}, serr.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			// считаем хэш впустую, чтобы по времени ответа нельзя было понять, есть ли email
			s.burnHash(secret)
			return models.Identity{}, serr.ErrUserNotFound
		}
		return models.Identity{}, err
	}

	ok, err := s.hasher.Verify(secret, user.PasswordHash)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: verify password: %v", serr.ErrInternal, err)
	}
	if !ok {
		return models.Identity{}, serr.ErrInvalidCredentials
	}

	return user.Identity(), nil
}

func (s *AuthService) burnHash(secret string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("courses-api-dummy-password")
	})
	if s.dummyHash != "" {
		_, _ = s.hasher.Verify(secret, s.dummyHash)
	}
}
