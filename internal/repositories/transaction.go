package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TxManagerInterface interface {
	RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// TxManager обслуживает обновления вида "прочитать FOR UPDATE, применить патч, записать".
// Read committed достаточно: строка заблокирована до конца транзакции.
type TxManager struct {
	pool    *pgxpool.Pool
	options pgx.TxOptions
}

func NewTxManager(pool *pgxpool.Pool) TxManagerInterface {
	return &TxManager{
		pool:    pool,
		options: pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
	}
}

// RunInTransaction коммитит, если fn вернула nil; иначе откатывает.
// Ошибка отката присоединяется к ошибке fn, чтобы errors.Is по доменным ошибкам продолжал работать.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := m.pool.BeginTx(ctx, m.options)
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("ошибка отката транзакции: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}
	return nil
}
