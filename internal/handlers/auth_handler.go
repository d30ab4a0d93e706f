package handlers

import (
	"errors"

	"ead/internal/logger"
	"ead/internal/models"
	"ead/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
	log         *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    NewValidator(),
		log:         logger.OrNop(log),
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/signup", h.HandleSignup)
}

// HandleSignup registers a new user.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req models.RegistrationRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}
	h.log.Debug("POST registerUser received", zap.String("username", req.Username), zap.String("email", req.Email))

	user, err := h.authService.RegisterUser(c.UserContext(), req)
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).SendString(msgUsernameTaken)
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).SendString(msgEmailTaken)
	case err != nil:
		return internalError(c, h.log, err)
	}

	h.log.Debug("POST registerUser saved", zap.String("userId", user.UserID))
	return c.Status(fiber.StatusCreated).JSON(user)
}
