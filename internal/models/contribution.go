package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ContributionType is the category of a submission.
type ContributionType string

// Supported contribution types
const (
	ContributionTypeIdea  ContributionType = "idea"
	ContributionTypeWork  ContributionType = "work"
	ContributionTypeAsset ContributionType = "asset"
)

// ParseContributionType returns the type for s or an error for unknown values.
func ParseContributionType(s string) (ContributionType, error) {
	switch t := ContributionType(s); t {
	case ContributionTypeIdea, ContributionTypeWork, ContributionTypeAsset:
		return t, nil
	}
	return "", fmt.Errorf("unknown contribution type %q", s)
}

// Scan implements sql.Scanner.
func (t *ContributionType) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	parsed, err := ParseContributionType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t ContributionType) Value() (driver.Value, error) {
	return string(t), nil
}

// ContributionStatus is the lifecycle state of a contribution.
// The set of values is closed: Scan and ParseContributionStatus reject
// anything outside the four constants below.
type ContributionStatus string

// Contribution lifecycle states
const (
	StatusPending      ContributionStatus = "PENDING"
	StatusVerified     ContributionStatus = "VERIFIED"
	StatusRejected     ContributionStatus = "REJECTED"
	StatusNeedsChanges ContributionStatus = "NEEDS_CHANGES"
)

// ParseContributionStatus returns the status for s or an error for unknown values.
func ParseContributionStatus(s string) (ContributionStatus, error) {
	switch st := ContributionStatus(s); st {
	case StatusPending, StatusVerified, StatusRejected, StatusNeedsChanges:
		return st, nil
	}
	return "", fmt.Errorf("unknown contribution status %q", s)
}

// IsTerminal reports whether no decision may move the contribution any further.
func (s ContributionStatus) IsTerminal() bool {
	return s == StatusVerified || s == StatusRejected
}

// AcceptsDecision reports whether a decision on a contribution in this state
// changes the state. Only PENDING contributions are decided; NEEDS_CHANGES has
// no resubmission path yet.
func (s ContributionStatus) AcceptsDecision() bool {
	return s == StatusPending
}

// Scan implements sql.Scanner.
func (s *ContributionStatus) Scan(src any) error {
	v, err := scanString(src)
	if err != nil {
		return err
	}
	parsed, err := ParseContributionStatus(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer.
func (s ContributionStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Contribution is a user submission awaiting or having completed review.
type Contribution struct {
	ID          int64              `json:"id" db:"id"`
	UserID      int64              `json:"user_id" db:"user_id"`
	Title       string             `json:"title" db:"title"`
	Description string             `json:"description" db:"description"`
	Type        ContributionType   `json:"type" db:"type"`
	FileURL     *string            `json:"file_url" db:"file_url"`
	Status      ContributionStatus `json:"status" db:"status"`
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" db:"updated_at"`

	// User is set by listings that join the owner in the same query.
	User *UserSummary `json:"user,omitempty" db:"-"`
}

// ContributionCandidate is an already validated submission.
type ContributionCandidate struct {
	Title       string
	Description string
	Type        ContributionType
	FileURL     *string
}

func scanString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("unexpected NULL enum value")
	}
	return "", fmt.Errorf("unsupported enum source type %T", src)
}
