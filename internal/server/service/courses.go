package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
)

// CoursesService реализует операции над курсами.
//
// Порядок для изменения и удаления фиксирован:
// загрузка по id (ErrNotFound) -> проверка владельца (ErrForbidden) -> запись.
// Валидация тела и аутентификация выполняются раньше, в HTTP-конвейере.
type CoursesService struct {
	repo CoursesRepo
}

// NewCoursesService создаёт CoursesService.
func NewCoursesService(repo CoursesRepo) *CoursesService {
	return &CoursesService{repo: repo}
}

// List возвращает все курсы с владельцами.
func (s *CoursesService) List(ctx context.Context) ([]models.CourseWithOwner, error) {
	return s.repo.List(ctx)
}

// Get возвращает курс по строковому id из URL.
// Некорректный id означает, что такого курса нет.
func (s *CoursesService) Get(ctx context.Context, rawID string) (models.CourseWithOwner, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return models.CourseWithOwner{}, serr.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create создаёт курс, владельцем становится identity.
//
// Ошибки:
//   - ErrConstraint — владелец не существует
//   - ErrInternal — ошибка хранилища
func (s *CoursesService) Create(ctx context.Context, identity models.Identity, f models.CourseFields) (models.Course, error) {
	if err := Validate(Payload{"title": f.Title, "description": f.Description}, CourseRules); err != nil {
		return models.Course{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.Course{}, err
	}
	return s.repo.Create(ctx, identity.ID, f)
}

// Update полностью заменяет изменяемые поля курса.
//
// Ошибки:
//   - ErrNotFound — курса нет
//   - ErrForbidden — identity не владелец
//   - ErrInternal — ошибка хранилища
func (s *CoursesService) Update(ctx context.Context, identity models.Identity, rawID string, f models.CourseFields) error {
	if err := Validate(Payload{"title": f.Title, "description": f.Description}, CourseRules); err != nil {
		return err
	}

	course, err := s.loadOwned(ctx, identity, rawID)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	_, err = s.repo.Update(ctx, course, f)
	return err
}

// Delete удаляет курс.
//
// Ошибки те же, что у Update.
func (s *CoursesService) Delete(ctx context.Context, identity models.Identity, rawID string) error {
	course, err := s.loadOwned(ctx, identity, rawID)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return s.repo.Delete(ctx, course)
}

// loadOwned загружает курс и проверяет владельца. NotFound всегда проверяется раньше Forbidden.
func (s *CoursesService) loadOwned(ctx context.Context, identity models.Identity, rawID string) (models.Course, error) {
	found, err := s.Get(ctx, rawID)
	if err != nil {
		return models.Course{}, err
	}
	if err := Authorize(identity, found.Course); err != nil {
		return models.Course{}, err
	}
	return found.Course, nil
}
