package services

//go:generate mockgen -source=verification.go -destination=verification_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-veritas/internal/logger"
	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrAuthorizationDenied is returned when the caller is not an admin at the time of the call.
var ErrAuthorizationDenied = errors.New("admin access required")

// AdminReader reads the current state of a user, including its admin flag.
type AdminReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// VerificationLogWriter appends audit records.
type VerificationLogWriter interface {
	Append(ctx context.Context, entry models.VerificationLog) (*models.VerificationLog, error)
}

// VerificationLogReader reads audit records.
type VerificationLogReader interface {
	ListByContribution(ctx context.Context, contributionID int64) ([]models.VerificationLog, error)
}

// CatalogInvalidator drops cached public catalog pages.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// VerificationService applies admin decisions to contributions.
type VerificationService struct {
	tx            Transactor
	admins        AdminReader
	contributions ContributionWriter
	reader        ContributionReader
	logWriter     VerificationLogWriter
	logReader     VerificationLogReader
	catalog       CatalogInvalidator
	kafkaWriter   KafkaWriter
}

// NewVerificationService creates a new VerificationService.
// catalog and kafkaWriter may be nil.
func NewVerificationService(
	tx Transactor,
	admins AdminReader,
	contributions ContributionWriter,
	reader ContributionReader,
	logWriter VerificationLogWriter,
	logReader VerificationLogReader,
	catalog CatalogInvalidator,
	kafkaWriter KafkaWriter,
) *VerificationService {
	return &VerificationService{
		tx:            tx,
		admins:        admins,
		contributions: contributions,
		reader:        reader,
		logWriter:     logWriter,
		logReader:     logReader,
		catalog:       catalog,
		kafkaWriter:   kafkaWriter,
	}
}

// ApplyDecision records decision of adminID on a contribution.
//
// The contribution row is locked for the whole transaction, so concurrent
// decisions on one contribution are applied one after another and only the
// first one changes the status. Later attempts see the committed status,
// are logged as duplicates and return OutcomeAlreadyDecided. Every call that
// gets past the authorization and lookup checks writes exactly one log record
// in the same transaction as the status change.
func (s *VerificationService) ApplyDecision(
	ctx context.Context,
	adminID, contributionID int64,
	decision models.Decision,
	notes *string,
) (*models.Contribution, models.DecisionOutcome, error) {
	log := logger.FromContext(ctx)

	target, err := decision.TargetStatus()
	if err != nil {
		return nil, "", err
	}
	notes = normalizeNotes(notes)

	var (
		result  *models.Contribution
		outcome models.DecisionOutcome
	)
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.requireAdmin(ctx, adminID); err != nil {
			return err
		}

		current, err := s.contributions.LockByID(ctx, contributionID)
		if err != nil {
			return persistence(err)
		}
		if current == nil {
			return ErrContributionNotFound
		}

		entry := models.VerificationLog{
			ContributionID: contributionID,
			AdminID:        adminID,
			Decision:       decision,
			Notes:          notes,
		}

		if !current.Status.AcceptsDecision() {
			entry.Notes = models.DuplicateNotes(current.Status, notes)
			entry.IsDuplicate = true
			if _, err := s.logWriter.Append(ctx, entry); err != nil {
				return persistence(err)
			}
			result, outcome = current, models.OutcomeAlreadyDecided
			return nil
		}

		updated, err := s.contributions.UpdateStatus(ctx, contributionID, target)
		if err != nil {
			return persistence(err)
		}
		if _, err := s.logWriter.Append(ctx, entry); err != nil {
			return persistence(err)
		}
		result, outcome = updated, models.OutcomeApplied
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			log.Infow("decision refused", "admin_id", adminID, "contribution_id", contributionID, "error", err)
			return nil, "", err
		}
		log.Errorw("failed to apply decision", "admin_id", adminID, "contribution_id", contributionID, "error", err)
		return nil, "", persistence(err)
	}

	log.Infow("decision recorded",
		"admin_id", adminID,
		"contribution_id", contributionID,
		"decision", decision,
		"status", result.Status,
		"outcome", outcome,
	)

	if outcome == models.OutcomeApplied && result.Status == models.StatusVerified {
		s.invalidateCatalog(ctx)
	}
	s.publishDecision(ctx, models.DecisionEvent{
		EventID:        uuid.NewString(),
		Timestamp:      time.Now().Unix(),
		ContributionID: contributionID,
		AdminID:        adminID,
		Decision:       decision,
		Status:         result.Status,
		Outcome:        outcome,
	})

	return result, outcome, nil
}

// ListLogs returns the audit trail of a contribution, oldest first.
func (s *VerificationService) ListLogs(ctx context.Context, adminID, contributionID int64) ([]models.VerificationLog, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	c, err := s.reader.GetByID(ctx, contributionID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get contribution", "contribution_id", contributionID, "error", err)
		return nil, persistence(err)
	}
	if c == nil {
		return nil, ErrContributionNotFound
	}

	logs, err := s.logReader.ListByContribution(ctx, contributionID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list verification logs", "contribution_id", contributionID, "error", err)
		return nil, persistence(err)
	}
	return logs, nil
}

func (s *VerificationService) requireAdmin(ctx context.Context, adminID int64) error {
	return requireAdmin(ctx, s.admins, adminID)
}

func requireAdmin(ctx context.Context, admins AdminReader, userID int64) error {
	user, err := admins.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to read admin flag", "user_id", userID, "error", err)
		return persistence(err)
	}
	if user == nil || !user.IsAdmin {
		logger.FromContext(ctx).Infow("admin access denied", "user_id", userID)
		return ErrAuthorizationDenied
	}
	return nil
}

// invalidateCatalog runs after commit. A failure leaves stale pages until their TTL.
func (s *VerificationService) invalidateCatalog(ctx context.Context) {
	if s.catalog == nil {
		return
	}
	if err := s.catalog.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warnw("failed to invalidate asset catalog cache", "error", err)
	}
}

// publishDecision publishes a committed decision to Kafka.
func (s *VerificationService) publishDecision(ctx context.Context, event models.DecisionEvent) {
	if s.kafkaWriter == nil {
		logger.FromContext(ctx).Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal decision event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ContributionID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish decision event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.FromContext(ctx).Infow("Decision event published to Kafka", "event_id", event.EventID, "outcome", event.Outcome)
	}
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
