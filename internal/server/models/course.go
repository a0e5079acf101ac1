package models

import (
	"time"

	"github.com/google/uuid"
)

// Course — запись курса. UserID обязателен: курс без владельца не существует.
type Course struct {
	ID              uuid.UUID
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
	UserID          uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CourseWithOwner — курс вместе с владельцем (для чтения).
type CourseWithOwner struct {
	Course
	Owner Identity
}

// CourseFields — изменяемые поля курса (создание и полная замена при обновлении).
type CourseFields struct {
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
}
