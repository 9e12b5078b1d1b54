package errors

import (
	"errors"
	"fmt"
)

var (
	// Общие
	ErrNotFound      = errors.New("запись не найдена")
	ErrInvalidUserID = errors.New("Invalid user ID")

	// Ошибки сервисов, текст стабилен для каждой операции
	ErrRoutesUnavailable    = errors.New("could not retrieve routes")
	ErrBestRouteUnavailable = errors.New("could not determine the best route")
	ErrUsersUnavailable     = errors.New("could not retrieve users")
	ErrUserUnavailable      = errors.New("could not retrieve user")

	// Данные
	ErrInvalidAllowedRoutes = errors.New("некорректный список разрешённых маршрутов")
)

// HttpError - ошибка с HTTP-статусом и сообщением для клиента.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

// Wrap оборачивает причину в ошибку операции, сохраняя обе для errors.Is.
func Wrap(op error, cause error) error {
	if cause == nil {
		return op
	}
	return fmt.Errorf("%w: %w", op, cause)
}
