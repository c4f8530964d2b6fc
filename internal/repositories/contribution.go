package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-veritas/internal/models"
)

const contributionColumns = `id, user_id, title, description, type, file_url, status, created_at, updated_at`

// contributionWithUserRow is a contribution joined with its owner.
type contributionWithUserRow struct {
	models.Contribution
	UserEmail    string `db:"user_email"`
	UserUsername string `db:"user_username"`
	UserIsAdmin  bool   `db:"user_is_admin"`
}

func (row contributionWithUserRow) toModel() models.Contribution {
	c := row.Contribution
	c.User = &models.UserSummary{
		ID:       c.UserID,
		Email:    row.UserEmail,
		Username: row.UserUsername,
		IsAdmin:  row.UserIsAdmin,
	}
	return c
}

// ContributionWriteRepository handles contribution writes and row locks.
type ContributionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// NewContributionWriteRepository creates a new ContributionWriteRepository.
func NewContributionWriteRepository(db *sqlx.DB, txGetter TxGetter) *ContributionWriteRepository {
	return &ContributionWriteRepository{db: db, txGetter: txGetter}
}

// Insert stores a new PENDING contribution owned by userID.
func (r *ContributionWriteRepository) Insert(ctx context.Context, userID int64, candidate models.ContributionCandidate) (*models.Contribution, error) {
	const query = `
		INSERT INTO contributions (user_id, title, description, type, file_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + contributionColumns

	args := []any{userID, candidate.Title, candidate.Description, candidate.Type, candidate.FileURL, models.StatusPending}

	var c models.Contribution
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &c, query, args...)

	logQuery(ctx, query, args, c.ID, err)

	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LockByID locks the contribution row until the surrounding transaction ends
// and returns its latest committed version, or nil when it does not exist.
func (r *ContributionWriteRepository) LockByID(ctx context.Context, id int64) (*models.Contribution, error) {
	const query = `SELECT ` + contributionColumns + ` FROM contributions WHERE id = $1 FOR UPDATE`

	ex, err := lockExecutor(ctx, r.txGetter)
	if err != nil {
		return nil, err
	}

	var c models.Contribution
	err = sqlx.GetContext(ctx, ex, &c, query, id)

	logQuery(ctx, query, []any{id}, c.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateStatus sets the status and bumps updated_at.
func (r *ContributionWriteRepository) UpdateStatus(ctx context.Context, id int64, status models.ContributionStatus) (*models.Contribution, error) {
	const query = `
		UPDATE contributions
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + contributionColumns

	var c models.Contribution
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &c, query, id, status)

	logQuery(ctx, query, []any{id, status}, c.Status, err)

	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ContributionReadRepository handles contribution reads.
type ContributionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// NewContributionReadRepository creates a new ContributionReadRepository.
func NewContributionReadRepository(db *sqlx.DB, txGetter TxGetter) *ContributionReadRepository {
	return &ContributionReadRepository{db: db, txGetter: txGetter}
}

// CountPendingByUser counts the PENDING contributions owned by userID.
func (r *ContributionReadRepository) CountPendingByUser(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM contributions WHERE user_id = $1 AND status = $2`
	return r.count(ctx, query, userID, models.StatusPending)
}

// CountByStatus counts contributions in status.
func (r *ContributionReadRepository) CountByStatus(ctx context.Context, status models.ContributionStatus) (int, error) {
	const query = `SELECT COUNT(*) FROM contributions WHERE status = $1`
	return r.count(ctx, query, status)
}

// CountByUser counts contributions owned by userID in any status.
func (r *ContributionReadRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM contributions WHERE user_id = $1`
	return r.count(ctx, query, userID)
}

// GetByID returns the contribution with id, or nil when it does not exist.
func (r *ContributionReadRepository) GetByID(ctx context.Context, id int64) (*models.Contribution, error) {
	const query = `SELECT ` + contributionColumns + ` FROM contributions WHERE id = $1`

	var c models.Contribution
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &c, query, id)

	logQuery(ctx, query, []any{id}, c.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByStatusOldestFirst lists contributions in status with their owners, oldest first.
func (r *ContributionReadRepository) ListByStatusOldestFirst(ctx context.Context, status models.ContributionStatus, limit, offset int) ([]models.Contribution, error) {
	const query = `
		SELECT c.id, c.user_id, c.title, c.description, c.type, c.file_url, c.status, c.created_at, c.updated_at,
		       u.email AS user_email, u.username AS user_username, u.is_admin AS user_is_admin
		FROM contributions c
		JOIN users u ON u.id = c.user_id
		WHERE c.status = $1
		ORDER BY c.created_at ASC, c.id ASC
		LIMIT $2 OFFSET $3
	`
	return r.listWithUser(ctx, query, status, limit, offset)
}

// ListByStatusNewestFirst lists contributions in status with their owners, newest first.
func (r *ContributionReadRepository) ListByStatusNewestFirst(ctx context.Context, status models.ContributionStatus, limit, offset int) ([]models.Contribution, error) {
	const query = `
		SELECT c.id, c.user_id, c.title, c.description, c.type, c.file_url, c.status, c.created_at, c.updated_at,
		       u.email AS user_email, u.username AS user_username, u.is_admin AS user_is_admin
		FROM contributions c
		JOIN users u ON u.id = c.user_id
		WHERE c.status = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3
	`
	return r.listWithUser(ctx, query, status, limit, offset)
}

// ListByUser lists contributions owned by userID in any status, newest first.
func (r *ContributionReadRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Contribution, error) {
	const query = `
		SELECT ` + contributionColumns + `
		FROM contributions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	contributions := []models.Contribution{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &contributions, query, userID, limit, offset)

	logQuery(ctx, query, []any{userID, limit, offset}, len(contributions), err)

	if err != nil {
		return nil, err
	}
	return contributions, nil
}

func (r *ContributionReadRepository) listWithUser(ctx context.Context, query string, args ...any) ([]models.Contribution, error) {
	var rows []contributionWithUserRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)

	logQuery(ctx, query, args, len(rows), err)

	if err != nil {
		return nil, err
	}

	contributions := make([]models.Contribution, 0, len(rows))
	for _, row := range rows {
		contributions = append(contributions, row.toModel())
	}
	return contributions, nil
}

func (r *ContributionReadRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query, args...)

	logQuery(ctx, query, args, n, err)

	return n, err
}
