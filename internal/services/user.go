package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"navigation-api/internal/entities"
	"navigation-api/internal/repositories"
	apperrors "navigation-api/pkg/errors"
)

type UserServiceInterface interface {
	GetAllUsers(ctx context.Context) ([]entities.User, error)
	GetUserByID(ctx context.Context, userID int64) (*entities.User, error)
}

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUserByID возвращает nil, nil если пользователя нет.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*entities.User, error) {
	if userID <= 0 {
		return nil, apperrors.ErrInvalidUserID
	}

	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Пользователь не найден", zap.Int64("userID", userID))
			return nil, nil
		}
		s.logger.Error("Ошибка получения пользователя", zap.Int64("userID", userID), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrUserUnavailable, err)
	}
	return user, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.userRepository.FindAll(ctx)
	if err != nil {
		s.logger.Error("Ошибка получения списка пользователей", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrUsersUnavailable, err)
	}

	if len(users) == 0 {
		s.logger.Warn("В базе нет пользователей")
	}
	return users, nil
}
