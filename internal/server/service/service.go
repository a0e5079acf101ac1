// Package service содержит бизнес-логику приложения (courses API).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_repos.go -package=mocks

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users   UsersRepo
	Courses CoursesRepo
	Health  HealthRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth    *AuthService
	Users   *UsersService
	Courses *CoursesService
	Health  HealthRepo
}

// NewServices собирает все сервисы приложения.
// cfg нужен для выбора и настройки хэширования паролей.
func NewServices(repos Repositories, cfg *config.Config) (*Services, error) {
	hasher, err := NewHasher(cfg.Password)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:    NewAuthService(repos.Users, hasher),
		Users:   NewUsersService(repos.Users, hasher),
		Courses: NewCoursesService(repos.Courses),
		Health:  repos.Health,
	}, nil
}

// NewHasher строит хэшер паролей по секции password конфига.
//
// Новые пароли хэшируются выбранным алгоритмом, а проверяются оба формата,
// чтобы смена алгоритма не ломала вход уже зарегистрированным пользователям.
func NewHasher(cfg config.PasswordConfig) (crypto.Hasher, error) {
	argon := crypto.Argon2Params{
		Time:      cfg.Argon2.Time,
		MemoryKiB: cfg.Argon2.MemoryKiB,
		Threads:   cfg.Argon2.Threads,
		KeyLen:    cfg.Argon2.KeyLen,
		SaltLen:   cfg.Argon2.SaltLen,
	}

	primary, err := crypto.NewHasher(cfg.Hasher, argon, cfg.Bcrypt.Cost)
	if err != nil {
		return nil, err
	}

	return crypto.MultiHasher{
		Primary: primary,
		Argon2:  crypto.Argon2Hasher{Params: argon},
		Bcrypt:  crypto.BcryptHasher{Cost: cfg.Bcrypt.Cost},
	}, nil
}

// HealthRepo — минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo — репозиторий пользователей.
type UsersRepo interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// CoursesRepo — репозиторий курсов.
type CoursesRepo interface {
	List(ctx context.Context) ([]models.CourseWithOwner, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.CourseWithOwner, error)
	Create(ctx context.Context, userID uuid.UUID, f models.CourseFields) (models.Course, error)
	Update(ctx context.Context, course models.Course, f models.CourseFields) (models.Course, error)
	Delete(ctx context.Context, course models.Course) error
}
