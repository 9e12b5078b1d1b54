package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"navigation-api/internal/entities"
	apperrors "navigation-api/pkg/errors"
)

const userTable = "users"

var userFields = []string{"id", "name", "allowed_routes", "cost_limit"}

// allowedRoutesSeparator - разделитель id в колонке allowed_routes.
const allowedRoutesSeparator = ","

type UserRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entities.User, error)
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	Clear(ctx context.Context, tx pgx.Tx) error
	SaveAll(ctx context.Context, tx pgx.Tx, users []entities.User) ([]entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
	psql    sq.StatementBuilderType
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{
		storage: storage,
		logger:  logger,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ParseAllowedRoutes разбирает "1,2,3" в []int64. Пустая строка даёт пустой
// список.
func ParseAllowedRoutes(raw string) ([]int64, error) {
	ids := make([]int64, 0)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ids, nil
	}

	for _, part := range strings.Split(raw, allowedRoutesSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAllowedRoutes, raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func FormatAllowedRoutes(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, allowedRoutesSeparator)
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	var allowedRoutes string

	err := row.Scan(&user.ID, &user.Name, &allowedRoutes, &user.CostLimit)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования user: %w", err)
	}

	user.AllowedRoutes, err = ParseAllowedRoutes(allowedRoutes)
	if err != nil {
		return nil, fmt.Errorf("пользователь %d: %w", user.ID, err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entities.User, error) {
	query, args, err := r.psql.Select(userFields...).From(userTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса users: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	query, args, err := r.psql.Select(userFields...).From(userTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса user: %w", err)
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) Clear(ctx context.Context, tx pgx.Tx) error {
	query, args, err := r.psql.Delete(userTable).ToSql()
	if err != nil {
		return err
	}
	tag, err := pick(r.storage, tx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("не удалось очистить users: %w", err)
	}
	r.logger.Debug("Таблица users очищена", zap.Int64("rows", tag.RowsAffected()))
	return nil
}

// SaveAll вставляет пользователей по одному, как и маршруты: порядок
// результата совпадает с порядком входного среза.
func (r *UserRepository) SaveAll(ctx context.Context, tx pgx.Tx, users []entities.User) ([]entities.User, error) {
	db := pick(r.storage, tx)
	saved := make([]entities.User, 0, len(users))

	for _, u := range users {
		query, args, err := r.psql.Insert(userTable).
			Columns("name", "allowed_routes", "cost_limit").
			Values(u.Name, FormatAllowedRoutes(u.AllowedRoutes), u.CostLimit).
			Suffix("RETURNING id, name, allowed_routes, cost_limit").
			ToSql()
		if err != nil {
			return nil, err
		}

		created, err := scanUser(db.QueryRow(ctx, query, args...))
		if err != nil {
			return nil, fmt.Errorf("не удалось сохранить пользователя %q: %w", u.Name, err)
		}
		saved = append(saved, *created)
	}
	return saved, nil
}
