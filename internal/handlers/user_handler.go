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

// Link is a hypermedia reference attached to a listed resource.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// UserResource is a user plus its navigation links.
type UserResource struct {
	models.User
	Links []Link `json:"links"`
}

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
	log      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: NewValidator(),
		log:      logger.OrNop(log),
	}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:userId", h.HandleGetUser)
	userRoutes.Delete("/:userId", h.HandleDeleteUser)
	userRoutes.Put("/:userId", h.HandleUpdateUser)
	userRoutes.Put("/:userId/password", h.HandleUpdatePassword)
	userRoutes.Put("/:userId/image", h.HandleUpdateImage)
}

// HandleGetUsers lists users. Each entry carries a self link.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	filter := repositories.UserFilter{
		UserType:   c.Query("userType"),
		UserStatus: c.Query("userStatus"),
		Email:      c.Query("email"),
		FullName:   c.Query("fullName"),
	}
	page, err := h.service.ListUsers(c.UserContext(), filter, pageRequest(c, "userId"))
	if err != nil {
		return internalError(c, h.log, err)
	}

	base := c.BaseURL() + "/users/"
	return c.JSON(models.MapPage(page, func(u models.User) UserResource {
		return UserResource{
			User:  u,
			Links: []Link{{Rel: "self", Href: base + u.UserID}},
		}
	}))
}

// HandleGetUser retrieves a single user.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c)
	}
	user, err := h.service.GetUser(c.UserContext(), userID)
	if err != nil {
		return h.userError(c, err, msgUserNotExists)
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c)
	}
	h.log.Debug("DELETE deleteUser received", zap.String("userId", userID))
	if err := h.service.DeleteUser(c.UserContext(), userID); err != nil {
		return h.userError(c, err, msgUserNotFound)
	}
	return c.SendString(msgUserDeleted)
}

// HandleUpdateUser updates full name, phone number and cpf.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c)
	}
	var req models.ProfileUpdateRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}
	h.log.Debug("PUT updateUser received", zap.String("userId", userID))

	user, err := h.service.UpdateProfile(c.UserContext(), userID, req)
	if err != nil {
		return h.userError(c, err, msgUserNotExists)
	}
	return c.JSON(user)
}

// HandleUpdatePassword changes the password after checking the old one.
func (h *UserHandler) HandleUpdatePassword(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c)
	}
	var req models.PasswordUpdateRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}
	h.log.Debug("PUT updatePassword received", zap.String("userId", userID))

	if _, err := h.service.UpdatePassword(c.UserContext(), userID, req); err != nil {
		return h.userError(c, err, msgUserNotExists)
	}
	return c.SendString(msgPasswordUpdated)
}

// HandleUpdateImage replaces the user image URL.
func (h *UserHandler) HandleUpdateImage(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c)
	}
	var req models.ImageUpdateRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}
	h.log.Debug("PUT updateImage received", zap.String("userId", userID))

	user, err := h.service.UpdateImage(c.UserContext(), userID, req)
	if err != nil {
		return h.userError(c, err, msgUserNotExists)
	}
	return c.JSON(user)
}

func (h *UserHandler) userError(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).SendString(notFound)
	case errors.Is(err, services.ErrPasswordMismatch):
		return c.Status(fiber.StatusConflict).SendString(msgPasswordMismatch)
	default:
		return internalError(c, h.log, err)
	}
}
