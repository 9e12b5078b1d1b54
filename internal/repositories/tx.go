package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TxBeginner - источник транзакций, обычно *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx выполняет fn в транзакции. Ошибка fn или паника откатывают её,
// иначе транзакция коммитится.
func WithTx(ctx context.Context, db TxBeginner, logger *zap.Logger, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if p := recover(); p != nil {
			rollback(ctx, tx, logger, fmt.Errorf("паника: %v", p))
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := rollback(ctx, tx, logger, err); rbErr != nil {
			return errors.Join(err, fmt.Errorf("ошибка при откате транзакции: %w", rbErr))
		}
		return err
	}

	committed = true
	if err := tx.Commit(ctx); err != nil {
		logger.Error("Не удалось закоммитить транзакцию", zap.Error(err))
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx, logger *zap.Logger, cause error) error {
	if err := tx.Rollback(ctx); err != nil {
		logger.Error("Не удалось откатить транзакцию", zap.Error(err), zap.NamedError("cause", cause))
		return err
	}
	logger.Debug("Транзакция откачена", zap.NamedError("cause", cause))
	return nil
}
