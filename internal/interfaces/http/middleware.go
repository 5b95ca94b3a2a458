package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/produccion-dashboard/pkg/logger"
	"github.com/jhoicas/produccion-dashboard/pkg/requestid"
)

// RequestID toma X-Request-ID de la petición (o genera uno), lo deja en el UserContext
// y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestid.Header)
		if id == "" {
			id = requestid.FromOrNew(c.UserContext())
		}
		c.SetUserContext(requestid.With(c.UserContext(), id))
		c.Set(requestid.Header, id)
		return c.Next()
	}
}

// AccessLog registra cada petición con zerolog.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		ev := log.Debug()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Warn().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", requestid.From(c.UserContext())).
			Msg("petición HTTP")
		return err
	}
}
