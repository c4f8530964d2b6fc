package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-veritas/internal/models"
)

const userColumns = `id, email, username, password_hash, is_admin, created_at`

// UserReadRepository reads users.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// NewUserReadRepository creates a new UserReadRepository.
func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with id, or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, executor(ctx, r.db, r.txGetter), query, id)
}

// GetByIdentifier returns the user whose email or username equals identifier,
// or nil when there is none. Usernames are stored lower-cased.
func (r *UserReadRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 OR username = lower($1)
		LIMIT 1
	`
	return r.getOne(ctx, executor(ctx, r.db, r.txGetter), query, identifier)
}

// LockByID locks the user row until the surrounding transaction ends and returns it,
// or nil when it does not exist. Concurrent lockers of the same row wait; other rows are not blocked.
func (r *UserReadRepository) LockByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	ex, err := lockExecutor(ctx, r.txGetter)
	if err != nil {
		return nil, err
	}
	return r.getOne(ctx, ex, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, ex sqlx.ExtContext, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, ex, &user, query, arg)

	logQuery(ctx, query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository creates users.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// NewUserWriteRepository creates a new UserWriteRepository.
func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user. Duplicate email or username yields an error wrapping ErrUniqueViolation.
func (r *UserWriteRepository) Create(ctx context.Context, email, username, passwordHash string, isAdmin bool) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, username, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email, username, passwordHash, isAdmin)

	// password hash is left out of the log
	logQuery(ctx, query, []any{email, username, isAdmin}, user.ID, err)

	if constraint, ok := UniqueConstraint(err); ok {
		return nil, fmt.Errorf("%w: %s", ErrUniqueViolation, constraint)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
