package middleware

import (
	"time"

	"PanganPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs each request through the application logger.
func RequestLogging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			err := next(c)

			log.Info("request",
				logger.String("method", req.Method),
				logger.String("path", req.RequestURI),
				logger.String("remote", req.RemoteAddr),
				logger.Int("status", c.Response().Status),
				logger.Duration("latency_ms", time.Since(start)),
			)

			return err
		}
	}
}
