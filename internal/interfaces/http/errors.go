package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/pkg/logger"
	"github.com/jhoicas/Estoque-api/pkg/validator"
)

// errorResponder traduce errores de dominio a respuestas HTTP.
type errorResponder struct {
	log *logger.Logger
}

func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// respond mapea err a status + código. Los errores no previstos se registran y salen como 500.
func (r errorResponder) respond(c *fiber.Ctx, err error) error {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]dto.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, dto.FieldError{Field: f.Field, Rule: f.Rule, Message: f.Message})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error(), Fields: fields})
	case errors.Is(err, domain.ErrCategoryImmutable):
		return fail(c, fiber.StatusBadRequest, "CATEGORY_IMMUTABLE", err.Error())
	case errors.Is(err, domain.ErrPasswordMismatch):
		return fail(c, fiber.StatusBadRequest, "PASSWORD_MISMATCH", err.Error())
	case errors.Is(err, domain.ErrCannotDeleteSelf):
		return fail(c, fiber.StatusBadRequest, "CANNOT_DELETE_SELF", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionNotFound):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autenticado")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		return fail(c, fiber.StatusNotFound, "PRODUCT_NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "CONFLICT", err.Error())
	}
	r.log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
}

// bind parsea el body JSON en out, recorta sus campos de texto y lo valida con las reglas del DTO.
func bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	if n, ok := out.(dto.Normalizer); ok {
		n.Normalize()
	}
	return validator.Struct(out)
}

var errInvalidBody = errors.New("cuerpo inválido")

// respondBind responde a un error devuelto por bind.
func (r errorResponder) respondBind(c *fiber.Ctx, err error) error {
	if errors.Is(err, errInvalidBody) {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", err.Error())
	}
	return r.respond(c, err)
}
