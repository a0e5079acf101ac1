// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-courses-api/internal/shared/logger"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// identityKey — ключ контекста, под которым хранится Identity аутентифицированного пользователя.
const identityKey ctxKey = "identity"

// CredentialVerifier проверяет пару идентификатор/секрет.
// Реализуется service.AuthService.
type CredentialVerifier interface {
	Verify(ctx context.Context, identifier, secret string) (models.Identity, error)
}

// BasicAuthenticator проверяет заголовок Authorization: Basic.
//
// Используется в HTTP middleware для:
//   - извлечения пары email/пароль из заголовка
//   - проверки её через CredentialVerifier
//   - сохранения Identity в context.Context
//
// Учётные данные проверяются заново на каждом запросе, состояние не хранится.
type BasicAuthenticator struct {
	Verifier CredentialVerifier
	Log      *logger.HTTPLogger
}

// NewBasicAuthenticator создаёт BasicAuthenticator.
func NewBasicAuthenticator(v CredentialVerifier, log *logger.HTTPLogger) *BasicAuthenticator {
	if log == nil {
		log = logger.Nop()
	}
	return &BasicAuthenticator{Verifier: v, Log: log}
}

// IdentityFromContext извлекает Identity аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - Identity
//   - false, если пользователь не аутентифицирован
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	v, ok := ctx.Value(identityKey).(models.Identity)
	return v, ok
}

// ContextWithIdentity возвращает новый контекст с Identity.
func ContextWithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// Authenticate проверяет значение заголовка Authorization и возвращает
// контекст с Identity. Исходный контекст не меняется.
//
// Ошибки:
//   - ErrMissingCredentials — заголовка нет
//   - ErrMalformedCredentials — не Basic или битый base64
//   - ошибки CredentialVerifier как есть
func (a *BasicAuthenticator) Authenticate(ctx context.Context, header string) (context.Context, error) {
	identifier, secret, err := ParseBasic(header)
	if err != nil {
		return ctx, err
	}

	id, err := a.Verifier.Verify(ctx, identifier, secret)
	if err != nil {
		return ctx, err
	}

	return ContextWithIdentity(ctx, id), nil
}

// AuthMiddleware возвращает HTTP middleware, пропускающий дальше только
// аутентифицированные запросы.
//
// При ошибке вызывается onFail, ответ формирует он. В лог пишется только
// вид отказа, email в лог не попадает.
func (a *BasicAuthenticator) AuthMiddleware(onFail func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := a.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				if serr.IsAuthFailure(err) {
					a.Log.LogAuthFailure(r.Method, r.URL.Path, failureReason(err))
				}
				onFail(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseBasic разбирает заголовок формата:
//
//	Authorization: Basic base64(email:password)
//
// Схема сравнивается без учёта регистра. Пароль может содержать ':'.
func ParseBasic(h string) (identifier, secret string, err error) {
	h = strings.TrimSpace(h)
	if h == "" {
		return "", "", serr.ErrMissingCredentials
	}

	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", serr.ErrMalformedCredentials
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", serr.ErrMalformedCredentials
	}

	identifier, secret, ok := strings.Cut(string(raw), ":")
	if !ok {
		return "", "", serr.ErrMalformedCredentials
	}
	return identifier, secret, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, serr.ErrMissingCredentials):
		return "missing_credentials"
	case errors.Is(err, serr.ErrMalformedCredentials):
		return "malformed_credentials"
	case errors.Is(err, serr.ErrUserNotFound):
		return "user_not_found"
	default:
		return "invalid_credentials"
	}
}
