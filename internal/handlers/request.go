package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"ead/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgUserNotExists      = "O usuário não existe"
	msgUserNotFound       = "Usuário não encontrado."
	msgUserDeleted        = "Usuário deletado."
	msgUsernameTaken      = "Erro: O nome do usuário já está sendo utilizado."
	msgEmailTaken         = "Erro: O email já está sendo utilizado."
	msgPasswordMismatch   = "As senhas não coincidem"
	msgPasswordUpdated    = "Senha atualizada."
	msgModuleNotFound     = "O módulo não existe."
	msgLessonNotFound     = "A lição não foi encontrada para este módulo."
	msgLessonDeleted      = "A lição foi deletada com sucesso."
	msgInvalidID          = "Identificador inválido."
	msgInvalidUsername    = "Nome de usuário inválido"
	msgInternalError      = "Erro interno do servidor."
	msgInvalidRequestBody = "Invalid request body"
)

// NewValidator returns a validator that reports json field names and knows
// the usernameconstraint tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag name, which this is not.
	_ = v.RegisterValidation("usernameconstraint", validUsername)
	return v
}

// validUsername rejects empty usernames and any containing whitespace.
func validUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}
	return strings.IndexFunc(username, unicode.IsSpace) < 0
}

// bindAndValidate parses the body into dst and validates it. On failure it
// writes the 400 response and returns false.
func bindAndValidate(c *fiber.Ctx, validate *validator.Validate, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msgInvalidRequestBody,
			"error":   err.Error(),
		})
	}

	if err := validate.Struct(dst); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return false, err
		}
		errorMessages := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fieldMessage(e)
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}

func fieldMessage(e validator.FieldError) string {
	if e.Tag() == "usernameconstraint" {
		return msgInvalidUsername
	}
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
}

// pathID reads a uuid path parameter in canonical form.
func pathID(c *fiber.Ctx, name string) (string, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// pageRequest reads page, size and sort=field,direction from the query
// string.
func pageRequest(c *fiber.Ctx, defaultSort string) repositories.PageRequest {
	req := repositories.PageRequest{
		Page:      c.QueryInt("page", 0),
		Size:      c.QueryInt("size", repositories.DefaultPageSize),
		Sort:      defaultSort,
		Direction: repositories.Asc,
	}
	if sort := c.Query("sort"); sort != "" {
		parts := strings.SplitN(sort, ",", 2)
		if field := strings.TrimSpace(parts[0]); field != "" {
			req.Sort = field
		}
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			req.Direction = repositories.Desc
		}
	}
	return req.Normalize()
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).SendString(msgInvalidID)
}

func internalError(c *fiber.Ctx, log *zap.Logger, err error) error {
	log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).SendString(msgInternalError)
}
