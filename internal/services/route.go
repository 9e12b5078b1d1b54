package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"navigation-api/internal/entities"
	"navigation-api/internal/repositories"
	apperrors "navigation-api/pkg/errors"
)

type RouteServiceInterface interface {
	FindAllRoutes(ctx context.Context) ([]entities.Route, error)
	GetBestRoute(ctx context.Context, userID int64) (*entities.Route, error)
}

type RouteService struct {
	routeRepo repositories.RouteRepositoryInterface
	userRepo  repositories.UserRepositoryInterface
	logger    *zap.Logger
}

func NewRouteService(
	routeRepo repositories.RouteRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) RouteServiceInterface {
	return &RouteService{routeRepo: routeRepo, userRepo: userRepo, logger: logger}
}

func (s *RouteService) FindAllRoutes(ctx context.Context) ([]entities.Route, error) {
	routes, err := s.routeRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Ошибка получения списка маршрутов", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrRoutesUnavailable, err)
	}
	return routes, nil
}

// GetBestRoute возвращает nil, nil если пользователь не найден или
// подходящего маршрута нет.
func (s *RouteService) GetBestRoute(ctx context.Context, userID int64) (*entities.Route, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Пользователь не найден", zap.Int64("userID", userID))
			return nil, nil
		}
		s.logger.Error("Ошибка поиска пользователя для лучшего маршрута", zap.Int64("userID", userID), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrBestRouteUnavailable, err)
	}

	routes, err := s.routeRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Ошибка получения маршрутов для лучшего маршрута", zap.Int64("userID", userID), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrBestRouteUnavailable, err)
	}

	best := SelectBestRoute(*user, routes)
	if best == nil {
		s.logger.Info("Нет доступного маршрута в пределах лимита",
			zap.Int64("userID", userID),
			zap.Float64("costLimit", user.CostLimit),
		)
		return nil, nil
	}

	s.logger.Debug("Лучший маршрут найден", zap.Int64("userID", userID), zap.Int64("routeID", best.ID))
	return best, nil
}
