package repositories

import (
	"context"
	"errors"
	"fmt"

	"ead/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var lessonSortColumns = map[string]string{
	"lessonId":       "lesson_id",
	"title":          "title",
	"creationDate":   "creation_date",
	"lastUpdateDate": "last_update_date",
}

// GORMModuleRepository is a GORM implementation of ModuleRepository.
type GORMModuleRepository struct {
	db *gorm.DB
}

func NewGORMModuleRepository(db *gorm.DB) *GORMModuleRepository {
	return &GORMModuleRepository{db: db}
}

func (r *GORMModuleRepository) GetByID(ctx context.Context, id string) (*models.Module, error) {
	var module models.Module
	if err := r.db.WithContext(ctx).First(&module, "module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get module by ID %s: %w", id, err)
	}
	return &module, nil
}

func (r *GORMModuleRepository) Create(ctx context.Context, module *models.Module) error {
	if module.ModuleID == "" {
		module.ModuleID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit("Lessons").Create(module).Error; err != nil {
		return fmt.Errorf("failed to create module: %w", err)
	}
	return nil
}

// GORMLessonRepository is a GORM implementation of LessonRepository.
type GORMLessonRepository struct {
	db *gorm.DB
}

// NewGORMLessonRepository creates a new instance of GORMLessonRepository.
func NewGORMLessonRepository(db *gorm.DB) *GORMLessonRepository {
	return &GORMLessonRepository{db: db}
}

// FindAllIntoModule lists one page of the lessons of moduleID matching filter.
func (r *GORMLessonRepository) FindAllIntoModule(ctx context.Context, moduleID string, filter LessonFilter, page PageRequest) ([]models.Lesson, int64, error) {
	page = page.Normalize()
	query := r.db.WithContext(ctx).
		Model(&models.Lesson{}).
		Where("module_id = ?", moduleID).
		Scopes(filter.scope)

	var lessons []models.Lesson
	total, err := paginate(query, page, lessonSortColumns, "lesson_id", &lessons)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list lessons of module %s: %w", moduleID, err)
	}
	return lessons, total, nil
}

// GetIntoModule retrieves a lesson only if it belongs to moduleID.
func (r *GORMLessonRepository) GetIntoModule(ctx context.Context, moduleID, lessonID string) (*models.Lesson, error) {
	var lesson models.Lesson
	err := r.db.WithContext(ctx).
		Where("module_id = ? AND lesson_id = ?", moduleID, lessonID).
		First(&lesson).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lesson %s of module %s: %w", lessonID, moduleID, err)
	}
	return &lesson, nil
}

func (r *GORMLessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	if lesson.LessonID == "" {
		lesson.LessonID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(lesson).Error; err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}

func (r *GORMLessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	res := r.db.WithContext(ctx).Model(lesson).Select("*").Updates(lesson)
	if res.Error != nil {
		return fmt.Errorf("failed to update lesson: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GORMLessonRepository) Delete(ctx context.Context, lesson *models.Lesson) error {
	res := r.db.WithContext(ctx).
		Where("module_id = ? AND lesson_id = ?", lesson.ModuleID, lesson.LessonID).
		Delete(&models.Lesson{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete lesson: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
