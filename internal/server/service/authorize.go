package service

import (
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
)

// Authorize разрешает изменять курс только его владельцу.
// Курс к этому моменту уже должен быть загружен из хранилища.
func Authorize(identity models.Identity, course models.Course) error {
	if course.UserID != identity.ID {
		return serr.ErrForbidden
	}
	return nil
}
