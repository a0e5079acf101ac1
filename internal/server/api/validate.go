package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

type ctxKey string

const (
	courseRequestKey ctxKey = "course_request"
	userRequestKey   ctxKey = "user_request"
)

// decodeBody читает JSON-тело с ограничением размера.
// Пустое тело считается пустым объектом: отсутствующие поля отловит валидация.
// После объекта допускаются только пробелы.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBody)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return serr.ErrBadJSON
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return serr.ErrBadJSON
	}
	return nil
}

// ValidateCourse разбирает и проверяет тело запроса курса.
// Стоит перед RequireAuth: некорректное тело даёт 400 даже без учётных данных.
func (h *Handler) ValidateCourse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req apimodels.CourseRequest
		if err := h.decodeBody(w, r, &req); err != nil {
			h.WriteServiceError(w, r, err)
			return
		}
		if err := service.Validate(service.CoursePayload(req), service.CourseRules); err != nil {
			h.WriteServiceError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), courseRequestKey, req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ValidateUser разбирает и проверяет тело запроса регистрации.
func (h *Handler) ValidateUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req apimodels.CreateUserRequest
		if err := h.decodeBody(w, r, &req); err != nil {
			h.WriteServiceError(w, r, err)
			return
		}
		if err := service.Validate(service.UserPayload(req), service.UserRules); err != nil {
			h.WriteServiceError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userRequestKey, req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth пропускает дальше только запросы с верной парой email/пароль.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return h.Auth.AuthMiddleware(h.WriteServiceError)(next)
}

func courseRequestFromContext(ctx context.Context) (apimodels.CourseRequest, bool) {
	v, ok := ctx.Value(courseRequestKey).(apimodels.CourseRequest)
	return v, ok
}

func userRequestFromContext(ctx context.Context) (apimodels.CreateUserRequest, bool) {
	v, ok := ctx.Value(userRequestKey).(apimodels.CreateUserRequest)
	return v, ok
}
