package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// AppOptions configuración de la instancia Fiber.
type AppOptions struct {
	Name        string
	CORSOrigins string // lista separada por comas
	Log         *logger.Logger
}

// NewApp crea la app Fiber con recover, CORS con credenciales y log de peticiones.
// Las rutas inexistentes y los errores no manejados responden con dto.ErrorResponse.
func NewApp(opts AppOptions) *fiber.App {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code := "HTTP_ERROR"
				if fe.Code == fiber.StatusNotFound {
					code = "NOT_FOUND"
				}
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
			}
			log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		},
	})
	app.Use(recover.New())
	if strings.TrimSpace(opts.CORSOrigins) != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowCredentials: true,
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		}))
	}
	app.Use(RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.Name})
	})
	return app
}
