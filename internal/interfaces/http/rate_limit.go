package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// RateLimit limita las peticiones por IP con el formato de ulule/limiter ("10-M", "100-H").
// Un formato inválido devuelve error al construir, no en cada petición.
func RateLimit(formatted string, log *logger.Logger) (fiber.Handler, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	instance := limiter.New(memory.NewStore(), rate)

	return func(c *fiber.Ctx) error {
		res, err := instance.Get(c.UserContext(), c.IP())
		if err != nil {
			log.Warn().Err(err).Msg("rate limit no disponible")
			return c.Next()
		}
		c.Set("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset, 10))
		if res.Reached {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiados intentos, intente más tarde",
			})
		}
		return c.Next()
	}, nil
}
