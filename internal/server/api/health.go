package api

import (
	"net/http"

	"go.uber.org/zap"

	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

// WelcomeMessage — ответ на GET /.
const WelcomeMessage = "Welcome to the course REST API!"

// Root godoc
// @Summary      Welcome
// @Tags         system
// @Produce      json
// @Success      200 {object} models.MessageResponse
// @Router       / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	WriteMessage(w, http.StatusOK, WelcomeMessage)
}

// Health проверяет доступность хранилища.
//
// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} models.HealthResponse
// @Failure      503 {object} models.HealthResponse
// @Router       /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Health.Ping(r.Context()); err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, apimodels.HealthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, apimodels.HealthResponse{Status: "ok"})
}

// NotFound — ответ для неизвестных маршрутов.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteMessage(w, http.StatusNotFound, MsgRouteNotFound)
}

// MethodNotAllowed — ответ для известного маршрута с неподдерживаемым методом.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteMessage(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
