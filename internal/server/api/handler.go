// Package api реализует HTTP-слой сервера courses API.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - разбор и валидацию тела запроса до аутентификации;
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения в одном месте.
//
// Маршруты регистрируются в пакете net/http.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-courses-api/internal/shared/logger"
	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// DefaultMaxBodyBytes — лимит тела запроса, если в конфиге не задан.
const DefaultMaxBodyBytes int64 = 1 << 20

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Auth: проверка Basic-аутентификации;
//   - MaxBody: максимальный размер тела запроса в байтах.
type Handler struct {
	Svc     *service.Services
	Log     *logger.HTTPLogger
	Auth    *middleware.BasicAuthenticator
	MaxBody int64
}

// NewHandler создаёт экземпляр Handler. Аутентификатор строится поверх Svc.Auth.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, maxBody int64) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &Handler{
		Svc:     svc,
		Log:     log,
		Auth:    middleware.NewBasicAuthenticator(svc.Auth, log),
		MaxBody: maxBody,
	}
}

// writeJSON пишет статус и тело в JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage пишет ответ вида {"message": "..."}.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apimodels.MessageResponse{Message: msg})
}

// WriteErrors пишет ответ вида {"errors": [...]}.
func WriteErrors(w http.ResponseWriter, status int, messages ...string) {
	writeJSON(w, status, apimodels.ErrorsResponse{Errors: messages})
}
