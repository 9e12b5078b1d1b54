package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// Pinger - всё, что нужно /health от пула соединений.
type Pinger interface {
	Ping(ctx context.Context) error
}

func runHealthRouter(e *echo.Echo, db Pinger, logger *zap.Logger) {
	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Error("Проверка БД не прошла", zap.Error(err))
			return c.String(http.StatusServiceUnavailable, "database unavailable")
		}
		return c.String(http.StatusOK, "ok")
	})
}
