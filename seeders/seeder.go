package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"navigation-api/internal/entities"
	"navigation-api/internal/repositories"
)

// SeedRoutesAndUsers пересоздаёт тестовый набор маршрутов и пользователей
// в одной транзакции. При ошибке база остаётся в прежнем состоянии.
func SeedRoutesAndUsers(ctx context.Context,
	db *pgxpool.Pool,
	routeRepo repositories.RouteRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) error {
	logger.Info("▶️  Запуск наполнения маршрутов и пользователей...")

	err := repositories.WithTx(ctx, db, logger, func(tx pgx.Tx) error {
		// users зависят от routes, поэтому чистим их первыми
		if err := userRepo.Clear(ctx, tx); err != nil {
			return err
		}
		if err := routeRepo.Clear(ctx, tx); err != nil {
			return err
		}

		savedRoutes, err := routeRepo.SaveAll(ctx, tx, routesData)
		if err != nil {
			return err
		}

		users, err := buildUsers(usersData, savedRoutes)
		if err != nil {
			return err
		}

		savedUsers, err := userRepo.SaveAll(ctx, tx, users)
		if err != nil {
			return err
		}

		logger.Info("Данные записаны",
			zap.Int("routes", len(savedRoutes)),
			zap.Int("users", len(savedUsers)),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("ошибка наполнения БД: %w", err)
	}

	logger.Info("✅ Наполнение маршрутов и пользователей завершено!")
	return nil
}

// buildUsers подставляет реальные id сохранённых маршрутов вместо индексов.
func buildUsers(seeds []userSeed, routes []entities.Route) ([]entities.User, error) {
	users := make([]entities.User, 0, len(seeds))
	for _, s := range seeds {
		allowed := make([]int64, 0, len(s.RouteIndexes))
		for _, idx := range s.RouteIndexes {
			if idx < 0 || idx >= len(routes) {
				return nil, fmt.Errorf("пользователь %q ссылается на несуществующий маршрут #%d", s.Name, idx)
			}
			allowed = append(allowed, routes[idx].ID)
		}
		users = append(users, entities.User{
			Name:          s.Name,
			AllowedRoutes: allowed,
			CostLimit:     s.CostLimit,
		})
	}
	return users, nil
}
