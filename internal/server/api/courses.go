package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

// ListCourses godoc
// @Summary      List courses
// @Description  Returns all courses with their owners. Anonymous access.
// @Tags         courses
// @Produce      json
// @Success      200 {array} models.Course
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /api/courses [get]
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.Courses.List(r.Context())
	if err != nil {
		h.WriteServiceError(w, r, err)
		return
	}

	out := make([]apimodels.Course, 0, len(list))
	for _, c := range list {
		out = append(out, toCourseResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCourse godoc
// @Summary      Get course
// @Description  Returns one course with its owner. Anonymous access.
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course ID (UUID)"
// @Success      200 {object} models.Course
// @Failure      404 {object} models.MessageResponse "Course Not Found"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /api/courses/{id} [get]
func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	c, err := h.Svc.Courses.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.WriteServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourseResponse(c))
}

// CreateCourse создаёт курс, владельцем становится аутентифицированный пользователь.
// userId из тела не используется.
//
// CreateCourse godoc
// @Summary      Create course
// @Description  Creates a course owned by the authenticated user.
// @Tags         courses
// @Accept       json
// @Security     BasicAuth
// @Param        request body models.CourseRequest true "Course"
// @Success      201
// @Header       201 {string} Location "/api/courses/{id}"
// @Failure      400 {object} models.ErrorsResponse "Validation errors"
// @Failure      401 {object} models.MessageResponse "Access Denied"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /api/courses [post]
func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.writeContext(w, r)
	if !ok {
		return
	}

	c, err := h.Svc.Courses.Create(r.Context(), id, service.CourseFieldsFromRequest(req))
	if err != nil {
		h.WriteServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/courses/"+c.ID.String())
	w.WriteHeader(http.StatusCreated)
}

// UpdateCourse полностью заменяет изменяемые поля курса.
//
// Порядок проверок: тело (400) -> учётные данные (401) -> курс существует (404) -> владелец (403).
//
// UpdateCourse godoc
// @Summary      Update course
// @Description  Replaces title, description, estimatedTime and materialsNeeded. Owner only.
// @Tags         courses
// @Accept       json
// @Security     BasicAuth
// @Param        id      path      string  true  "Course ID (UUID)"
// @Param        request body models.CourseRequest true "Course"
// @Success      204
// @Failure      400 {object} models.ErrorsResponse "Validation errors"
// @Failure      401 {object} models.MessageResponse "Access Denied"
// @Failure      403 {object} models.MessageResponse "Forbidden"
// @Failure      404 {object} models.MessageResponse "Course Not Found"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /api/courses/{id} [put]
func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.writeContext(w, r)
	if !ok {
		return
	}

	courseID := chi.URLParam(r, "id")
	if err := h.Svc.Courses.Update(r.Context(), id, courseID, service.CourseFieldsFromRequest(req)); err != nil {
		h.logDenied(r, err, id, courseID)
		h.WriteServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCourse godoc
// @Summary      Delete course
// @Description  Deletes a course. Owner only.
// @Tags         courses
// @Security     BasicAuth
// @Param        id   path      string  true  "Course ID (UUID)"
// @Success      204
// @Failure      401 {object} models.MessageResponse "Access Denied"
// @Failure      403 {object} models.MessageResponse "Forbidden"
// @Failure      404 {object} models.MessageResponse "Course Not Found"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /api/courses/{id} [delete]
func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteServiceError(w, r, serr.ErrUnauthorized)
		return
	}

	courseID := chi.URLParam(r, "id")
	if err := h.Svc.Courses.Delete(r.Context(), id, courseID); err != nil {
		h.logDenied(r, err, id, courseID)
		h.WriteServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeContext достаёт Identity и проверенное тело, положенные middleware.
func (h *Handler) writeContext(w http.ResponseWriter, r *http.Request) (models.Identity, apimodels.CourseRequest, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteServiceError(w, r, serr.ErrUnauthorized)
		return models.Identity{}, apimodels.CourseRequest{}, false
	}
	req, ok := courseRequestFromContext(r.Context())
	if !ok {
		h.WriteServiceError(w, r, serr.ErrBadJSON)
		return models.Identity{}, apimodels.CourseRequest{}, false
	}
	return id, req, true
}

func (h *Handler) logDenied(r *http.Request, err error, id models.Identity, courseID string) {
	if !errors.Is(err, serr.ErrForbidden) {
		return
	}
	h.Log.Info("course write denied",
		zap.String("method", r.Method),
		zap.String("course_id", courseID),
		zap.String("user_id", id.ID.String()),
	)
}

func toCourseResponse(c models.CourseWithOwner) apimodels.Course {
	owner := toUserResponse(c.Owner)
	return apimodels.Course{
		ID:              c.ID.String(),
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID.String(),
		User:            &owner,
	}
}
