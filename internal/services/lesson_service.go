package services

import (
	"context"
	"errors"
	"fmt"

	"ead/internal/models"
	"ead/internal/repositories"

	"go.uber.org/zap"
)

// LessonService handles modules and the lessons they own.
type LessonService struct {
	moduleRepo repositories.ModuleRepository
	lessonRepo repositories.LessonRepository
	options
}

// NewLessonService creates a new LessonService.
func NewLessonService(moduleRepo repositories.ModuleRepository, lessonRepo repositories.LessonRepository, opts ...Option) *LessonService {
	return &LessonService{
		moduleRepo: moduleRepo,
		lessonRepo: lessonRepo,
		options:    newOptions(opts),
	}
}

// CreateModule stores a new module.
func (s *LessonService) CreateModule(ctx context.Context, req models.ModuleRequest) (*models.Module, error) {
	module := &models.Module{
		CourseID:     req.CourseID,
		Title:        req.Title,
		Description:  req.Description,
		CreationDate: s.now(),
	}
	if err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, err
	}
	s.log.Info("module created", zap.String("moduleId", module.ModuleID))
	return module, nil
}

// GetModule retrieves a module.
func (s *LessonService) GetModule(ctx context.Context, moduleID string) (*models.Module, error) {
	module, err := s.moduleRepo.GetByID(ctx, moduleID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrModuleNotFound
	}
	if err != nil {
		return nil, err
	}
	return module, nil
}

// CreateLesson stores a lesson under moduleID, which must exist.
func (s *LessonService) CreateLesson(ctx context.Context, moduleID string, req models.LessonRequest) (*models.Lesson, error) {
	module, err := s.GetModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	lesson := &models.Lesson{
		ModuleID:       module.ModuleID,
		Title:          req.Title,
		Description:    req.Description,
		VideoURL:       req.VideoURL,
		CreationDate:   now,
		LastUpdateDate: now,
	}
	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("failed to save lesson: %w", err)
	}
	s.log.Info("lesson created", zap.String("moduleId", moduleID), zap.String("lessonId", lesson.LessonID))
	return lesson, nil
}

// GetLesson retrieves a lesson only through its owning module.
func (s *LessonService) GetLesson(ctx context.Context, moduleID, lessonID string) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetIntoModule(ctx, moduleID, lessonID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

// ListLessons returns one page of the lessons of moduleID matching filter.
// An unknown module yields an empty page.
func (s *LessonService) ListLessons(ctx context.Context, moduleID string, filter repositories.LessonFilter, page repositories.PageRequest) (models.Page[models.Lesson], error) {
	page = page.Normalize()
	lessons, total, err := s.lessonRepo.FindAllIntoModule(ctx, moduleID, filter, page)
	if err != nil {
		return models.Page[models.Lesson]{}, err
	}
	return models.NewPage(lessons, page.Page, page.Size, total), nil
}

// UpdateLesson replaces title, description and video URL and stamps the
// modification time.
func (s *LessonService) UpdateLesson(ctx context.Context, moduleID, lessonID string, req models.LessonRequest) (*models.Lesson, error) {
	lesson, err := s.GetLesson(ctx, moduleID, lessonID)
	if err != nil {
		return nil, err
	}
	lesson.Title = req.Title
	lesson.Description = req.Description
	lesson.VideoURL = req.VideoURL
	lesson.LastUpdateDate = s.now()

	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to update lesson %s: %w", lessonID, err)
	}
	s.log.Info("lesson updated", zap.String("lessonId", lessonID))
	return lesson, nil
}

// DeleteLesson removes a lesson from its module.
func (s *LessonService) DeleteLesson(ctx context.Context, moduleID, lessonID string) error {
	lesson, err := s.GetLesson(ctx, moduleID, lessonID)
	if err != nil {
		return err
	}
	if err := s.lessonRepo.Delete(ctx, lesson); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrLessonNotFound
		}
		return err
	}
	s.log.Info("lesson deleted", zap.String("lessonId", lessonID))
	return nil
}
