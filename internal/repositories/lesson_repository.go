package repositories

import (
	"context"

	"ead/internal/models"
)

// ModuleRepository defines the interface for module data access.
type ModuleRepository interface {
	GetByID(ctx context.Context, id string) (*models.Module, error)
	Create(ctx context.Context, module *models.Module) error
}

// LessonRepository defines the interface for lesson data access. Every
// lookup is scoped to the owning module.
type LessonRepository interface {
	FindAllIntoModule(ctx context.Context, moduleID string, filter LessonFilter, page PageRequest) ([]models.Lesson, int64, error)
	GetIntoModule(ctx context.Context, moduleID, lessonID string) (*models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	Update(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, lesson *models.Lesson) error
}
