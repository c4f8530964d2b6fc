package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-veritas/internal/logger"
)

var (
	// ErrNoTransaction is returned by locking reads called outside a transaction.
	ErrNoTransaction = errors.New("row lock requires a transaction")
	// ErrUniqueViolation wraps unique constraint violations reported by PostgreSQL.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrCacheMiss is returned by cache repositories when no entry exists.
	ErrCacheMiss = errors.New("cache miss")
)

const pgUniqueViolation = "23505"

// TxGetter returns the transaction carried by ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the transaction from ctx when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// lockExecutor is executor for SELECT ... FOR UPDATE, which is meaningless outside a transaction.
func lockExecutor(ctx context.Context, txGetter TxGetter) (sqlx.ExtContext, error) {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx, nil
		}
	}
	return nil, ErrNoTransaction
}

// logQuery logs the query in a single line together with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// UniqueConstraint returns the violated constraint name when err is a unique violation.
func UniqueConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
