package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-veritas/internal/models"
)

const verificationLogColumns = `id, contribution_id, admin_id, decision, notes, is_duplicate, timestamp`

// VerificationLogWriteRepository appends audit records. Records are never
// updated or deleted; they go away only with their contribution (ON DELETE CASCADE).
type VerificationLogWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// NewVerificationLogWriteRepository creates a new VerificationLogWriteRepository.
func NewVerificationLogWriteRepository(db *sqlx.DB, txGetter TxGetter) *VerificationLogWriteRepository {
	return &VerificationLogWriteRepository{db: db, txGetter: txGetter}
}

// Append inserts entry and returns the stored record.
func (r *VerificationLogWriteRepository) Append(ctx context.Context, entry models.VerificationLog) (*models.VerificationLog, error) {
	const query = `
		INSERT INTO verification_logs (contribution_id, admin_id, decision, notes, is_duplicate, timestamp)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + verificationLogColumns

	args := []any{entry.ContributionID, entry.AdminID, entry.Decision, entry.Notes, entry.IsDuplicate}

	var stored models.VerificationLog
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &stored, query, args...)

	logQuery(ctx, query, args, stored.ID, err)

	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// VerificationLogReadRepository reads audit records.
type VerificationLogReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// NewVerificationLogReadRepository creates a new VerificationLogReadRepository.
func NewVerificationLogReadRepository(db *sqlx.DB, txGetter TxGetter) *VerificationLogReadRepository {
	return &VerificationLogReadRepository{db: db, txGetter: txGetter}
}

// ListByContribution returns the audit trail of a contribution, oldest first.
func (r *VerificationLogReadRepository) ListByContribution(ctx context.Context, contributionID int64) ([]models.VerificationLog, error) {
	const query = `
		SELECT ` + verificationLogColumns + `
		FROM verification_logs
		WHERE contribution_id = $1
		ORDER BY timestamp ASC, id ASC
	`

	logs := []models.VerificationLog{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &logs, query, contributionID)

	logQuery(ctx, query, []any{contributionID}, len(logs), err)

	if err != nil {
		return nil, err
	}
	return logs, nil
}
