package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testUser() models.User {
	return models.User{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		PasswordHash: "hash",
	}
}

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db, time.Second)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Joe", "Smith", "joe@smith.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), now))

	got, err := repo.Create(context.Background(), testUser())
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "joe@smith.com", got.EmailAddress)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Такой пользователь уже есть
func TestUsersRepository_Create_AlreadyExists(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), testUser())
	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

// not null
func TestUsersRepository_Create_NotNull(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23502"})

	_, err := repo.Create(context.Background(), testUser())
	require.ErrorIs(t, err, serr.ErrConstraint)
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), testUser())
	require.ErrorIs(t, err, serr.ErrInternal)
}

var userColumns = []string{"id", "first_name", "last_name", "email_address", "password_hash", "created_at"}

// поиск по email
func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db, time.Second)

	id := uuid.New()
	mock.ExpectQuery(`SELECT id, first_name, last_name, email_address, password_hash, created_at\s+FROM users\s+WHERE email_address=\$1`).
		WithArgs("joe@smith.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "Joe", "Smith", "joe@smith.com", "hash", time.Now()))

	u, err := repo.GetByEmail(context.Background(), "joe@smith.com")
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
	require.Equal(t, "hash", u.PasswordHash)
	require.Equal(t, "Joe", u.FirstName)
}

// не найден по email
func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`SELECT id, first_name`).
		WithArgs("nobody@smith.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@smith.com")
	require.ErrorIs(t, err, serr.ErrNotFound)
}

// ошибка сервера при поиске по email
func TestUsersRepository_GetByEmail_InternalError(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`SELECT id, first_name`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByEmail(context.Background(), "joe@smith.com")
	require.ErrorIs(t, err, serr.ErrInternal)
}

func TestHealthRepository_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	repo := repository.NewHealthRepository(db, time.Second)
	require.NoError(t, repo.Ping(context.Background()))
	require.Error(t, repo.Ping(context.Background()))
}
