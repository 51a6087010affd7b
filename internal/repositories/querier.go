package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier - то, что умеют и *pgxpool.Pool, и pgx.Tx: репозиторий не знает, в транзакции ли он.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// execBuilder собирает запрос squirrel и выполняет его без чтения строк.
func execBuilder(ctx context.Context, q querier, b sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("сборка запроса: %w", err)
	}
	return q.Exec(ctx, query, args...)
}

// queryRowBuilder собирает запрос и возвращает одну строку; ошибка сборки всплывёт на Scan.
func queryRowBuilder(ctx context.Context, q querier, b sq.Sqlizer) pgx.Row {
	query, args, err := b.ToSql()
	if err != nil {
		return errRow{fmt.Errorf("сборка запроса: %w", err)}
	}
	return q.QueryRow(ctx, query, args...)
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
