// Методы клиента для /api/courses.
package api

import (
	"errors"
	"net/url"
	"path"

	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

// ListCourses возвращает все курсы. Аутентификация не нужна.
func (c *Client) ListCourses() ([]apimodels.Course, error) {
	var resp []apimodels.Course
	err := c.GetJSON("/api/courses", &resp, nil)
	return resp, err
}

// GetCourse возвращает курс по id.
func (c *Client) GetCourse(id string) (apimodels.Course, error) {
	var resp apimodels.Course
	err := c.GetJSON(coursePath(id), &resp, nil)
	return resp, err
}

// CreateCourse создаёт курс и возвращает его id из заголовка Location.
func (c *Client) CreateCourse(req apimodels.CourseRequest, auth Credentials) (string, error) {
	h, err := c.PostJSON("/api/courses", req, nil, &auth)
	if err != nil {
		return "", err
	}
	loc := h.Get("Location")
	if loc == "" {
		return "", errors.New("server did not return Location")
	}
	return path.Base(loc), nil
}

// UpdateCourse полностью заменяет поля курса.
func (c *Client) UpdateCourse(id string, req apimodels.CourseRequest, auth Credentials) error {
	return c.PutJSON(coursePath(id), req, nil, &auth)
}

// DeleteCourse удаляет курс.
func (c *Client) DeleteCourse(id string, auth Credentials) error {
	return c.DeleteJSON(coursePath(id), nil, &auth)
}

func coursePath(id string) string {
	return "/api/courses/" + url.PathEscape(id)
}
