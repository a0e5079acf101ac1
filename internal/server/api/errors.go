package api

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
)

// Тексты ответов об ошибках
const (
	MsgAccessDenied     = "Access Denied"
	MsgForbidden        = "Forbidden"
	MsgNotFound         = "Course Not Found"
	MsgRouteNotFound    = "Route Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgInternal         = "internal error"
	MsgDuplicateEmail   = "The email address you entered already exists"
	MsgUnknownOwner     = "The referenced user does not exist"
	MsgBadJSON          = "Request body must be a valid JSON object"
)

// WWWAuthenticate — значение заголовка WWW-Authenticate для ответа 401.
const WWWAuthenticate = `Basic realm="courses"`

// WriteServiceError — единственное место, где ошибка превращается в HTTP-ответ.
//
// Соответствие:
//   - *ValidationError — 400 {"errors": [...]}
//   - ErrBadJSON — 400 {"errors": [...]}
//   - любой провал аутентификации — 401 "Access Denied" без уточнения причины
//   - ErrForbidden — 403
//   - ErrNotFound — 404
//   - ErrAlreadyExists — 409
//   - ErrConstraint — 400
//   - отмена запроса клиентом — только лог, ответ не пишется
//   - всё остальное — 500 без деталей
func (h *Handler) WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *serr.ValidationError

	switch {
	case errors.As(err, &verr):
		WriteErrors(w, http.StatusBadRequest, verr.Messages...)
	case errors.Is(err, serr.ErrBadJSON):
		WriteErrors(w, http.StatusBadRequest, MsgBadJSON)
	case serr.IsAuthFailure(err):
		w.Header().Set("WWW-Authenticate", WWWAuthenticate)
		WriteMessage(w, http.StatusUnauthorized, MsgAccessDenied)
	case errors.Is(err, serr.ErrForbidden):
		WriteMessage(w, http.StatusForbidden, MsgForbidden)
	case errors.Is(err, serr.ErrNotFound):
		WriteMessage(w, http.StatusNotFound, MsgNotFound)
	case errors.Is(err, serr.ErrAlreadyExists):
		WriteErrors(w, http.StatusConflict, MsgDuplicateEmail)
	case errors.Is(err, serr.ErrConstraint):
		WriteErrors(w, http.StatusBadRequest, MsgUnknownOwner)
	case errors.Is(err, context.Canceled) || r.Context().Err() != nil:
		h.Log.Info("request aborted by client",
			zap.String("method", r.Method),
			zap.String("uri", r.URL.Path),
		)
	default:
		h.Log.Error("request failed",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("uri", r.URL.Path),
		)
		WriteMessage(w, http.StatusInternalServerError, MsgInternal)
	}
}
