package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
)

// CoursesRepository хранит курсы в таблице courses.
//
// Изменение и удаление дополнительно фильтруются по user_id:
// это вторая, независимая от сервиса, проверка владельца.
type CoursesRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewCoursesRepository создаёт CoursesRepository.
func NewCoursesRepository(db *sql.DB, timeout time.Duration) *CoursesRepository {
	return &CoursesRepository{db: db, timeout: timeout}
}

const selectCourseWithOwner = `
	SELECT c.id, c.title, c.description, c.estimated_time, c.materials_needed,
	       c.user_id, c.created_at, c.updated_at,
	       u.first_name, u.last_name, u.email_address
	  FROM courses c
	  JOIN users u ON u.id = c.user_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourseWithOwner(row rowScanner) (models.CourseWithOwner, error) {
	var (
		c         models.CourseWithOwner
		estimated sql.NullString
		materials sql.NullString
	)

	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &estimated, &materials,
		&c.UserID, &c.CreatedAt, &c.UpdatedAt,
		&c.Owner.FirstName, &c.Owner.LastName, &c.Owner.EmailAddress,
	)
	if err != nil {
		return models.CourseWithOwner{}, err
	}

	c.EstimatedTime = nullStringPtr(estimated)
	c.MaterialsNeeded = nullStringPtr(materials)
	c.Owner.ID = c.UserID
	return c, nil
}

// List возвращает все курсы с владельцами в порядке создания.
func (r *CoursesRepository) List(ctx context.Context) ([]models.CourseWithOwner, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectCourseWithOwner+` ORDER BY c.created_at, c.id`)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	courses := make([]models.CourseWithOwner, 0)
	for rows.Next() {
		c, err := scanCourseWithOwner(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return courses, nil
}

// GetByID возвращает курс с владельцем.
//
// Ошибки:
//   - ErrNotFound — курса нет
//   - ErrInternal — ошибка БД
func (r *CoursesRepository) GetByID(ctx context.Context, id uuid.UUID) (models.CourseWithOwner, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	c, err := scanCourseWithOwner(r.db.QueryRowContext(ctx, selectCourseWithOwner+` WHERE c.id=$1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CourseWithOwner{}, serr.ErrNotFound
		}
		return models.CourseWithOwner{}, serr.ErrInternal
	}
	return c, nil
}

// Create создаёт курс, владельцем становится userID.
//
// Ошибки:
//   - ErrConstraint — userID пустой или пользователя нет (внешний ключ)
//   - ErrInternal — ошибка БД
func (r *CoursesRepository) Create(ctx context.Context, userID uuid.UUID, f models.CourseFields) (models.Course, error) {
	if userID == uuid.Nil {
		return models.Course{}, serr.ErrConstraint
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	c := models.Course{
		Title:           f.Title,
		Description:     f.Description,
		EstimatedTime:   f.EstimatedTime,
		MaterialsNeeded: f.MaterialsNeeded,
		UserID:          userID,
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING id, created_at, updated_at`,
		f.Title, f.Description, f.EstimatedTime, f.MaterialsNeeded, userID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation, pgNotNullViolation:
				return models.Course{}, serr.ErrConstraint
			}
		}
		return models.Course{}, serr.ErrInternal
	}

	return c, nil
}

// Update полностью заменяет изменяемые поля курса.
//
// Если строка не найдена по паре (id, user_id) — ErrNotFound
// (курс удалили между загрузкой и записью).
func (r *CoursesRepository) Update(ctx context.Context, course models.Course, f models.CourseFields) (models.Course, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`UPDATE courses
		    SET title = $3,
		        description = $4,
		        estimated_time = $5,
		        materials_needed = $6,
		        updated_at = now()
		  WHERE id = $1
		    AND user_id = $2
		RETURNING updated_at`,
		course.ID, course.UserID, f.Title, f.Description, f.EstimatedTime, f.MaterialsNeeded,
	).Scan(&course.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, serr.ErrNotFound
		}
		return models.Course{}, serr.ErrInternal
	}

	course.Title = f.Title
	course.Description = f.Description
	course.EstimatedTime = f.EstimatedTime
	course.MaterialsNeeded = f.MaterialsNeeded
	return course, nil
}

// Delete удаляет курс по паре (id, user_id).
func (r *CoursesRepository) Delete(ctx context.Context, course models.Course) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM courses WHERE id = $1 AND user_id = $2`,
		course.ID, course.UserID,
	)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
