package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
)

// быстрый хэшер для тестов
func testHasher() crypto.Hasher {
	return crypto.BcryptHasher{Cost: bcrypt.MinCost}
}

func newAuthService(t *testing.T) (*service.AuthService, *mocks.MockUsersRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)
	return service.NewAuthService(users, testHasher()), users
}

func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := testHasher().Hash(password)
	require.NoError(t, err)
	return models.User{
		ID:           uuid.New(),
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		PasswordHash: hash,
	}
}

func TestAuthService_Verify_OK(t *testing.T) {
	svc, users := newAuthService(t)
	u := storedUser(t, "joepassword")

	users.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").Return(u, nil)

	id, err := svc.Verify(context.Background(), "joe@smith.com", "joepassword")
	require.NoError(t, err)
	require.Equal(t, u.Identity(), id)
}

func TestAuthService_Verify_WrongPassword(t *testing.T) {
	svc, users := newAuthService(t)
	u := storedUser(t, "joepassword")

	users.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").Return(u, nil)

	_, err := svc.Verify(context.Background(), "joe@smith.com", "nope")
	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
	require.True(t, serr.IsAuthFailure(err))
}

// длинный пароль против короткого хэша даёт 401, а не внутреннюю ошибку
func TestAuthService_Verify_LongPassword(t *testing.T) {
	svc, users := newAuthService(t)
	u := storedUser(t, "joepassword")

	users.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").Return(u, nil)

	_, err := svc.Verify(context.Background(), "joe@smith.com", strings.Repeat("p", 100))
	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

func TestAuthService_Verify_UnknownEmail(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().GetByEmail(gomock.Any(), "ghost@mail.com").Return(models.User{}, serr.ErrNotFound).Times(2)

	_, err := svc.Verify(context.Background(), "ghost@mail.com", "whatever")
	require.ErrorIs(t, err, serr.ErrUserNotFound)

	// второй вызов идёт по уже посчитанному фиктивному хэшу
	_, err = svc.Verify(context.Background(), "ghost@mail.com", "whatever")
	require.ErrorIs(t, err, serr.ErrUserNotFound)
}

func TestAuthService_Verify_EmptyInput(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Verify(context.Background(), "  ", "secret")
	require.ErrorIs(t, err, serr.ErrInvalidCredentials)

	_, err = svc.Verify(context.Background(), "joe@smith.com", "")
	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

func TestAuthService_Verify_StoreError(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").Return(models.User{}, serr.ErrInternal)

	_, err := svc.Verify(context.Background(), "joe@smith.com", "joepassword")
	require.ErrorIs(t, err, serr.ErrInternal)
	require.False(t, serr.IsAuthFailure(err))
}

func TestAuthService_Verify_BrokenHash(t *testing.T) {
	svc, users := newAuthService(t)
	u := storedUser(t, "joepassword")
	u.PasswordHash = "garbage"

	users.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").Return(u, nil)

	_, err := svc.Verify(context.Background(), "joe@smith.com", "joepassword")
	require.True(t, errors.Is(err, serr.ErrInternal))
}
