package utils

import (
	"errors"
	"net/http"

	apperrors "navigation-api/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorList - соответствие доменных ошибок HTTP-статусам.
var ErrorList = []struct {
	Err     error
	Code    int
	Message string
}{
	{apperrors.ErrInvalidUserID, http.StatusBadRequest, "Invalid user ID"},
	{apperrors.ErrNotFound, http.StatusNotFound, "Not Found"},
}

// SuccessResponse отдаёт сущность или список как есть, без обёртки.
func SuccessResponse(ctx echo.Context, body interface{}) error {
	return ctx.JSON(http.StatusOK, body)
}

// ErrorResponse логирует ошибку и отвечает text/plain. fallback - текст для
// ошибок, которые не удалось сопоставить со статусом (500).
func ErrorResponse(ctx echo.Context, err error, fallback string, logger *zap.Logger) error {
	code, message := resolveError(err, fallback)

	fields := []zap.Field{
		zap.String("method", ctx.Request().Method),
		zap.String("uri", ctx.Request().RequestURI),
		zap.Int("status", code),
		zap.Error(err),
	}
	if code >= http.StatusInternalServerError {
		logger.Error("Ошибка обработки запроса", fields...)
	} else {
		logger.Warn("Запрос отклонён", fields...)
	}

	return ctx.String(code, message)
}

func resolveError(err error, fallback string) (int, string) {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}

	for _, item := range ErrorList {
		if errors.Is(err, item.Err) {
			return item.Code, item.Message
		}
	}

	return http.StatusInternalServerError, fallback
}
