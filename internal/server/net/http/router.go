// Package http реализует маршрутизацию HTTP-слоя сервера courses API.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - подключение общих middleware (логирование, recover, CORS);
//   - порядок проверок для запросов на запись: валидация тела, затем Basic-аутентификация.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - GET / и GET /api/health;
//   - /api/users: текущий пользователь и регистрация;
//   - /api/courses: чтение без аутентификации, запись только владельцем;
//   - swagger UI под /swagger/*.
func NewRouter(h *api.Handler, cors config.CORSConfig) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	r.Use(middleware.Recoverer(h.Log))
	r.Use(middleware.CORS(cors))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", h.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequireAuth).Get("/", h.CurrentUser)
			r.With(h.ValidateUser).Post("/", h.CreateUser)
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.ListCourses)
			// сначала тело (400), потом учётные данные (401)
			r.With(h.ValidateCourse, h.RequireAuth).Post("/", h.CreateCourse)

			r.Get("/{id}", h.GetCourse)
			r.With(h.ValidateCourse, h.RequireAuth).Put("/{id}", h.UpdateCourse)
			r.With(h.RequireAuth).Delete("/{id}", h.DeleteCourse)
		})
	})

	return r
}
