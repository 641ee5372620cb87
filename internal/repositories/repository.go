package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/tcg-trading-api/internal/logger"
	"github.com/sbilibin2017/tcg-trading-api/internal/sqlerr"
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor is the subset of *sqlx.DB and *sqlx.Tx used by the repositories.
type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type baseRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// exec returns the request transaction when there is one so that reads
// issued after a write in the same request observe it.
func (r baseRepository) exec(ctx context.Context) executor {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r baseRepository) get(ctx context.Context, dest any, query string, args ...any) error {
	err := r.exec(ctx).GetContext(ctx, dest, query, args...)
	logQuery(query, args, dest, err)
	return sqlerr.Convert(err)
}

func (r baseRepository) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	err := r.exec(ctx).SelectContext(ctx, dest, query, args...)
	logQuery(query, args, dest, err)
	return sqlerr.Convert(err)
}

// execAffecting runs a statement and returns sql.ErrNoRows when it touched nothing.
func (r baseRepository) execAffecting(ctx context.Context, query string, args ...any) error {
	res, err := r.exec(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return sqlerr.Convert(err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// logQuery logs the query on a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
