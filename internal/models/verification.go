package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Decision is an admin's moderation verdict.
type Decision string

// Admin decisions
const (
	DecisionApprove        Decision = "APPROVE"
	DecisionReject         Decision = "REJECT"
	DecisionRequestChanges Decision = "REQUEST_CHANGES"
)

// ParseDecision returns the decision for s or an error for unknown values.
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case DecisionApprove, DecisionReject, DecisionRequestChanges:
		return d, nil
	}
	return "", fmt.Errorf("unknown decision %q", s)
}

// TargetStatus maps a decision to the status it moves a PENDING contribution to.
func (d Decision) TargetStatus() (ContributionStatus, error) {
	switch d {
	case DecisionApprove:
		return StatusVerified, nil
	case DecisionReject:
		return StatusRejected, nil
	case DecisionRequestChanges:
		return StatusNeedsChanges, nil
	}
	return "", fmt.Errorf("unknown decision %q", string(d))
}

// Scan implements sql.Scanner.
func (d *Decision) Scan(src any) error {
	v, err := scanString(src)
	if err != nil {
		return err
	}
	parsed, err := ParseDecision(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d Decision) Value() (driver.Value, error) {
	return string(d), nil
}

// DecisionOutcome tells a fresh decision apart from an idempotent repeat.
type DecisionOutcome string

// Decision outcomes
const (
	OutcomeApplied        DecisionOutcome = "APPLIED"
	OutcomeAlreadyDecided DecisionOutcome = "ALREADY_DECIDED"
)

// VerificationLog is an immutable audit record of one decision attempt.
type VerificationLog struct {
	ID             int64     `json:"id" db:"id"`
	ContributionID int64     `json:"contribution_id" db:"contribution_id"`
	AdminID        int64     `json:"admin_id" db:"admin_id"`
	Decision       Decision  `json:"decision" db:"decision"`
	Notes          *string   `json:"notes" db:"notes"`
	IsDuplicate    bool      `json:"is_duplicate" db:"is_duplicate"`
	Timestamp      time.Time `json:"timestamp" db:"timestamp"`
}

// DuplicateNotes annotates the notes of an attempt on an already decided contribution.
func DuplicateNotes(current ContributionStatus, notes *string) *string {
	s := fmt.Sprintf("[Duplicate] Already %s.", current)
	if notes != nil && strings.TrimSpace(*notes) != "" {
		s += " " + strings.TrimSpace(*notes)
	}
	return &s
}
