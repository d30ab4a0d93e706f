package handlers

import (
	"errors"

	"ead/internal/logger"
	"ead/internal/models"
	"ead/internal/repositories"
	"ead/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LessonHandler handles HTTP requests for modules and their lessons.
type LessonHandler struct {
	service  *services.LessonService
	validate *validator.Validate
	log      *zap.Logger
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(service *services.LessonService, log *zap.Logger) *LessonHandler {
	return &LessonHandler{
		service:  service,
		validate: NewValidator(),
		log:      logger.OrNop(log),
	}
}

// RegisterRoutes registers the module and lesson routes.
func (h *LessonHandler) RegisterRoutes(router fiber.Router) {
	moduleRoutes := router.Group("/modules")
	moduleRoutes.Post("/", h.HandleCreateModule)
	moduleRoutes.Get("/:moduleId", h.HandleGetModule)

	lessonRoutes := moduleRoutes.Group("/:moduleId/lessons")
	lessonRoutes.Post("/", h.HandleCreateLesson)
	lessonRoutes.Get("/", h.HandleGetLessons)
	lessonRoutes.Get("/:lessonId", h.HandleGetLesson)
	lessonRoutes.Put("/:lessonId", h.HandleUpdateLesson)
	lessonRoutes.Delete("/:lessonId", h.HandleDeleteLesson)
}

// HandleCreateModule creates a module.
func (h *LessonHandler) HandleCreateModule(c *fiber.Ctx) error {
	var req models.ModuleRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}
	module, err := h.service.CreateModule(c.UserContext(), req)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(module)
}

// HandleGetModule retrieves a module.
func (h *LessonHandler) HandleGetModule(c *fiber.Ctx) error {
	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return badID(c)
	}
	module, err := h.service.GetModule(c.UserContext(), moduleID)
	if err != nil {
		return h.lessonError(c, err)
	}
	return c.JSON(module)
}

// HandleCreateLesson creates a lesson under an existing module.
func (h *LessonHandler) HandleCreateLesson(c *fiber.Ctx) error {
	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return badID(c)
	}
	var req models.LessonRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}
	h.log.Debug("POST saveLesson received", zap.String("moduleId", moduleID), zap.String("title", req.Title))

	lesson, err := h.service.CreateLesson(c.UserContext(), moduleID, req)
	if err != nil {
		return h.lessonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lesson)
}

// HandleGetLessons lists the lessons of a module. An unknown module lists
// nothing rather than failing.
func (h *LessonHandler) HandleGetLessons(c *fiber.Ctx) error {
	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return badID(c)
	}
	filter := repositories.LessonFilter{Title: c.Query("title")}
	page, err := h.service.ListLessons(c.UserContext(), moduleID, filter, pageRequest(c, "lessonId"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(page)
}

// HandleGetLesson retrieves a lesson of a module.
func (h *LessonHandler) HandleGetLesson(c *fiber.Ctx) error {
	moduleID, lessonID, ok := lessonPath(c)
	if !ok {
		return badID(c)
	}
	lesson, err := h.service.GetLesson(c.UserContext(), moduleID, lessonID)
	if err != nil {
		return h.lessonError(c, err)
	}
	return c.JSON(lesson)
}

// HandleUpdateLesson replaces title, description and video URL.
func (h *LessonHandler) HandleUpdateLesson(c *fiber.Ctx) error {
	moduleID, lessonID, ok := lessonPath(c)
	if !ok {
		return badID(c)
	}
	var req models.LessonRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}
	h.log.Debug("PUT updateLesson received", zap.String("lessonId", lessonID))

	lesson, err := h.service.UpdateLesson(c.UserContext(), moduleID, lessonID, req)
	if err != nil {
		return h.lessonError(c, err)
	}
	return c.JSON(lesson)
}

// HandleDeleteLesson removes a lesson from its module.
func (h *LessonHandler) HandleDeleteLesson(c *fiber.Ctx) error {
	moduleID, lessonID, ok := lessonPath(c)
	if !ok {
		return badID(c)
	}
	h.log.Debug("DELETE deleteLesson received", zap.String("lessonId", lessonID))
	if err := h.service.DeleteLesson(c.UserContext(), moduleID, lessonID); err != nil {
		return h.lessonError(c, err)
	}
	return c.SendString(msgLessonDeleted)
}

func lessonPath(c *fiber.Ctx) (string, string, bool) {
	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return "", "", false
	}
	lessonID, ok := pathID(c, "lessonId")
	if !ok {
		return "", "", false
	}
	return moduleID, lessonID, true
}

func (h *LessonHandler) lessonError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrModuleNotFound):
		return c.Status(fiber.StatusNotFound).SendString(msgModuleNotFound)
	case errors.Is(err, services.ErrLessonNotFound):
		return c.Status(fiber.StatusNotFound).SendString(msgLessonNotFound)
	default:
		return internalError(c, h.log, err)
	}
}
