// Package tx runs units of work inside a database transaction carried by the context.
package tx

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-veritas/internal/logger"
)

// Manager begins, commits and rolls back transactions on a sqlx database.
type Manager struct {
	db          *sqlx.DB
	lockTimeout time.Duration
}

// New creates a Manager. A positive lockTimeout bounds how long statements of
// the transaction wait for row locks held by other transactions.
func New(db *sqlx.DB, lockTimeout time.Duration) *Manager {
	return &Manager{db: db, lockTimeout: lockTimeout}
}

// Do runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back when fn returns an error or panics.
// Nested calls reuse the outer transaction.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if FromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
			}
			return
		}
		if err = tx.Commit(); err != nil {
			logger.Log.Errorw("failed to commit transaction", "error", err)
			err = fmt.Errorf("commit transaction: %w", err)
		}
	}()

	if m.lockTimeout > 0 {
		// SET LOCAL does not accept bind parameters.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("set lock timeout: %w", err)
		}
	}

	return fn(setTxToContext(ctx, tx))
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// FromContext retrieves the transaction from the context. Returns nil if not present.
func FromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
