// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
)

// коды ошибок PostgreSQL, которые мы различаем
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// UsersRepository хранит пользователей в таблице users.
type UsersRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewUsersRepository создаёт UsersRepository.
// timeout ограничивает каждый запрос к БД (0 — без ограничения).
func NewUsersRepository(db *sql.DB, timeout time.Duration) *UsersRepository {
	return &UsersRepository{db: db, timeout: timeout}
}

// Create сохраняет нового пользователя. В u ожидается уже посчитанный PasswordHash.
//
// Ошибки:
//   - ErrAlreadyExists — email уже занят (уникальный индекс)
//   - ErrConstraint — не заполнено обязательное поле
//   - ErrInternal — прочие ошибки БД
func (r *UsersRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (first_name, last_name, email_address, password_hash)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id, created_at`,
		u.FirstName, u.LastName, u.EmailAddress, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return models.User{}, serr.ErrAlreadyExists
			case pgNotNullViolation:
				return models.User{}, serr.ErrConstraint
			}
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByEmail ищет ровно одного пользователя по email (регистр учитывается).
//
// Ошибки:
//   - ErrNotFound — пользователя нет
//   - ErrInternal — ошибка БД
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, email_address, password_hash, created_at
		   FROM users
		  WHERE email_address=$1`,
		email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
