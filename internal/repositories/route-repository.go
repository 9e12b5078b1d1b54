package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"navigation-api/internal/entities"
	apperrors "navigation-api/pkg/errors"
)

const routeTable = "routes"

var routeFields = []string{"id", "name", "cost", "traffic"}

type RouteRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entities.Route, error)
	FindByID(ctx context.Context, id int64) (*entities.Route, error)
	Clear(ctx context.Context, tx pgx.Tx) error
	SaveAll(ctx context.Context, tx pgx.Tx, routes []entities.Route) ([]entities.Route, error)
}

type RouteRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
	psql    sq.StatementBuilderType
}

func NewRouteRepository(storage *pgxpool.Pool, logger *zap.Logger) RouteRepositoryInterface {
	return &RouteRepository{
		storage: storage,
		logger:  logger,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanRoute(row pgx.Row) (*entities.Route, error) {
	var route entities.Route
	err := row.Scan(&route.ID, &route.Name, &route.Cost, &route.Traffic)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования route: %w", err)
	}
	return &route, nil
}

// FindAll возвращает маршруты в порядке вставки (по id).
func (r *RouteRepository) FindAll(ctx context.Context) ([]entities.Route, error) {
	query, args, err := r.psql.Select(routeFields...).From(routeTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса routes: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]entities.Route, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, *route)
	}
	return routes, rows.Err()
}

func (r *RouteRepository) FindByID(ctx context.Context, id int64) (*entities.Route, error) {
	query, args, err := r.psql.Select(routeFields...).From(routeTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса route: %w", err)
	}
	return scanRoute(r.storage.QueryRow(ctx, query, args...))
}

func (r *RouteRepository) Clear(ctx context.Context, tx pgx.Tx) error {
	query, args, err := r.psql.Delete(routeTable).ToSql()
	if err != nil {
		return err
	}
	tag, err := pick(r.storage, tx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("не удалось очистить routes: %w", err)
	}
	r.logger.Debug("Таблица routes очищена", zap.Int64("rows", tag.RowsAffected()))
	return nil
}

// SaveAll вставляет маршруты по одному, чтобы порядок сгенерированных id
// совпадал с порядком входного среза.
func (r *RouteRepository) SaveAll(ctx context.Context, tx pgx.Tx, routes []entities.Route) ([]entities.Route, error) {
	db := pick(r.storage, tx)
	saved := make([]entities.Route, 0, len(routes))

	for _, route := range routes {
		query, args, err := r.psql.Insert(routeTable).
			Columns("name", "cost", "traffic").
			Values(route.Name, route.Cost, route.Traffic).
			Suffix("RETURNING id, name, cost, traffic").
			ToSql()
		if err != nil {
			return nil, err
		}

		created, err := scanRoute(db.QueryRow(ctx, query, args...))
		if err != nil {
			return nil, fmt.Errorf("не удалось сохранить маршрут %q: %w", route.Name, err)
		}
		saved = append(saved, *created)
	}
	return saved, nil
}
