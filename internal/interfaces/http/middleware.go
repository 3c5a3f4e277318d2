package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seasafety-api/pkg/logger"
	"github.com/jhoicas/seasafety-api/pkg/metrics"
)

// RequestLogger registra una línea estructurada por petición y alimenta las métricas HTTP.
//
// Uso:
//
//	app.Use(RequestLogger(log, m))
func RequestLogger(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// El ErrorHandler aún no escribió la respuesta: se resuelve aquí para loguear el status real.
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		latency := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path
		m.HTTPRequest(c.Method(), route, status, latency)

		var ev = log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.IP()).
			Msg("http_request")
		return nil
	}
}
