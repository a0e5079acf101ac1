package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

// CurrentUser возвращает аутентифицированного пользователя.
//
// Пароль и его хэш в ответ не попадают: ответ строится из Identity.
//
// CurrentUser godoc
// @Summary      Current user
// @Description  Returns the authenticated user. Password is never returned.
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200 {object} models.User
// @Failure      401 {object} models.MessageResponse "Access Denied"
// @Router       /api/users [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteServiceError(w, r, serr.ErrUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(id))
}

// CreateUser регистрирует пользователя.
//
// Тело уже разобрано и проверено ValidateUser.
//
// Возможные ошибки:
//   - 400 — не заполнены поля или неверный email;
//   - 409 — email уже занят;
//   - 500 — внутренняя ошибка.
//
// CreateUser godoc
// @Summary      Create user
// @Description  Creates a user. Responds with Location: / and an empty body.
// @Tags         users
// @Accept       json
// @Param        request body models.CreateUserRequest true "New user"
// @Success      201
// @Header       201 {string} Location "/"
// @Failure      400 {object} models.ErrorsResponse "Validation errors"
// @Failure      409 {object} models.ErrorsResponse "Email already exists"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /api/users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, ok := userRequestFromContext(r.Context())
	if !ok {
		h.WriteServiceError(w, r, serr.ErrBadJSON)
		return
	}

	_, err := h.Svc.Users.Create(r.Context(), models.NewUser{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	})
	if err != nil {
		h.WriteServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}

func toUserResponse(id models.Identity) apimodels.User {
	return apimodels.User{
		ID:           id.ID.String(),
		FirstName:    id.FirstName,
		LastName:     id.LastName,
		EmailAddress: id.EmailAddress,
	}
}
