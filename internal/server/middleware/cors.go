package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/config"
)

// CORS строит middleware по секции cors конфига.
// При выключенном CORS возвращает middleware, который ничего не делает.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
