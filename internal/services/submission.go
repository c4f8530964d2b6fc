package services

//go:generate mockgen -source=submission.go -destination=submission_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-veritas/internal/logger"
	"github.com/sbilibin2017/gw-veritas/internal/models"
)

// Error variables
var (
	ErrPendingLimitExceeded = errors.New("pending submission limit reached")
	ErrContributionNotFound = errors.New("contribution not found")
	ErrNotOwner             = errors.New("contribution belongs to another user")
	ErrPersistence          = errors.New("persistence failure")
)

// Transactor runs fn inside a database transaction carried by the context.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserLocker locks a user row for the rest of the transaction.
type UserLocker interface {
	LockByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// ContributionWriter defines write operations and row locks for contributions.
type ContributionWriter interface {
	Insert(ctx context.Context, userID int64, candidate models.ContributionCandidate) (*models.Contribution, error)
	LockByID(ctx context.Context, id int64) (*models.Contribution, error)
	UpdateStatus(ctx context.Context, id int64, status models.ContributionStatus) (*models.Contribution, error)
}

// ContributionReader defines read-only operations for contributions.
type ContributionReader interface {
	CountPendingByUser(ctx context.Context, userID int64) (int, error)
	CountByStatus(ctx context.Context, status models.ContributionStatus) (int, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Contribution, error)
	ListByStatusOldestFirst(ctx context.Context, status models.ContributionStatus, limit, offset int) ([]models.Contribution, error)
	ListByStatusNewestFirst(ctx context.Context, status models.ContributionStatus, limit, offset int) ([]models.Contribution, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Contribution, error)
}

// SubmissionService accepts new contributions and serves them back to their owners.
type SubmissionService struct {
	tx         Transactor
	users      UserLocker
	writer     ContributionWriter
	reader     ContributionReader
	maxPending int
}

// NewSubmissionService creates a new SubmissionService. maxPending is the
// number of PENDING contributions a user may hold at once.
func NewSubmissionService(
	tx Transactor,
	users UserLocker,
	writer ContributionWriter,
	reader ContributionReader,
	maxPending int,
) *SubmissionService {
	return &SubmissionService{
		tx:         tx,
		users:      users,
		writer:     writer,
		reader:     reader,
		maxPending: maxPending,
	}
}

// Submit stores candidate as a PENDING contribution of userID.
// The user row stays locked from the pending count to the insert, so
// concurrent submissions of one user are checked against the cap one at a time.
func (s *SubmissionService) Submit(ctx context.Context, userID int64, candidate models.ContributionCandidate) (*models.Contribution, error) {
	log := logger.FromContext(ctx)

	var created *models.Contribution
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		user, err := s.users.LockByID(ctx, userID)
		if err != nil {
			return persistence(err)
		}
		if user == nil {
			return ErrUserNotFound
		}

		pending, err := s.reader.CountPendingByUser(ctx, userID)
		if err != nil {
			return persistence(err)
		}
		if pending >= s.maxPending {
			log.Infow("pending limit reached", "user_id", userID, "pending", pending, "limit", s.maxPending)
			return ErrPendingLimitExceeded
		}

		created, err = s.writer.Insert(ctx, userID, candidate)
		if err != nil {
			return persistence(err)
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		log.Errorw("failed to submit contribution", "user_id", userID, "error", err)
		return nil, persistence(err)
	}

	log.Infow("contribution submitted", "user_id", userID, "contribution_id", created.ID, "type", created.Type)
	return created, nil
}

// ListMine returns a page of the user's own contributions in every status, newest first.
func (s *SubmissionService) ListMine(ctx context.Context, userID int64, page models.Page) (*models.ContributionPage, error) {
	total, err := s.reader.CountByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to count contributions", "user_id", userID, "error", err)
		return nil, persistence(err)
	}

	list, err := s.reader.ListByUser(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list contributions", "user_id", userID, "error", err)
		return nil, persistence(err)
	}

	return &models.ContributionPage{Data: list, Pagination: models.NewPageMeta(page, total)}, nil
}

// GetMine returns one of the user's contributions.
func (s *SubmissionService) GetMine(ctx context.Context, userID, contributionID int64) (*models.Contribution, error) {
	c, err := s.reader.GetByID(ctx, contributionID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get contribution", "contribution_id", contributionID, "error", err)
		return nil, persistence(err)
	}
	if c == nil {
		return nil, ErrContributionNotFound
	}
	if c.UserID != userID {
		logger.FromContext(ctx).Infow("contribution read by non-owner", "contribution_id", contributionID, "user_id", userID)
		return nil, ErrNotOwner
	}
	return c, nil
}

// persistence wraps a storage failure so callers can match ErrPersistence
// while the cause stays available to errors.Is and the logs.
func persistence(err error) error {
	if errors.Is(err, ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		ErrPendingLimitExceeded,
		ErrContributionNotFound,
		ErrNotOwner,
		ErrUserNotFound,
		ErrAuthorizationDenied,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
