package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
	"github.com/IvanChernomyrdin/go-courses-api/internal/shared/utils"
)

// Payload — поля входящего запроса на запись. Отсутствующее поле — отсутствующий ключ.
type Payload map[string]string

// Rule описывает ограничения одного поля.
type Rule struct {
	Field    string
	Required bool // поле должно присутствовать и быть непустым после TrimSpace
	// Format проверяется только для непустого значения
	Format        func(string) bool
	FormatMessage string
}

// Rules — правила в порядке объявления. В том же порядке возвращаются сообщения.
type Rules []Rule

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var (
	// CourseRules — правила для создания и обновления курса.
	CourseRules = Rules{
		{Field: "title", Required: true},
		{Field: "description", Required: true},
	}

	// UserRules — правила для создания пользователя.
	UserRules = Rules{
		{Field: "firstName", Required: true},
		{Field: "lastName", Required: true},
		{Field: "emailAddress", Required: true, Format: emailRe.MatchString, FormatMessage: "Please provide a valid email address"},
		{Field: "password", Required: true},
	}
)

// RequiredMessage — текст ошибки для пустого обязательного поля.
func RequiredMessage(field string) string {
	return fmt.Sprintf("Please provide a value for %q", field)
}

// Validate проверяет все правила без остановки на первой ошибке.
//
// Возвращает nil или *serr.ValidationError со всеми сообщениями.
func Validate(p Payload, rules Rules) error {
	var messages []string

	for _, rule := range rules {
		v, ok := p[rule.Field]
		blank := !ok || strings.TrimSpace(v) == ""

		if blank {
			if rule.Required {
				messages = append(messages, RequiredMessage(rule.Field))
			}
			continue
		}
		if rule.Format != nil && !rule.Format(strings.TrimSpace(v)) {
			messages = append(messages, rule.FormatMessage)
		}
	}

	if len(messages) > 0 {
		return serr.NewValidationError(messages...)
	}
	return nil
}

// CoursePayload переводит тело запроса курса в Payload.
func CoursePayload(req apimodels.CourseRequest) Payload {
	return Payload{
		"title":       req.Title,
		"description": req.Description,
	}
}

// UserPayload переводит тело запроса пользователя в Payload.
func UserPayload(req apimodels.CreateUserRequest) Payload {
	return Payload{
		"firstName":    req.FirstName,
		"lastName":     req.LastName,
		"emailAddress": req.EmailAddress,
		"password":     req.Password,
	}
}

// CourseFieldsFromRequest нормализует поля курса: обрезает пробелы,
// пустые необязательные поля превращает в nil.
func CourseFieldsFromRequest(req apimodels.CourseRequest) models.CourseFields {
	return models.CourseFields{
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		EstimatedTime:   utils.TrimPtr(req.EstimatedTime),
		MaterialsNeeded: utils.TrimPtr(req.MaterialsNeeded),
	}
}
