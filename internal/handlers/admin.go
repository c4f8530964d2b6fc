package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/services"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

// PendingLister lists the review queue.
type PendingLister interface {
	ListPending(ctx context.Context, adminID int64, page models.Page) (*models.ContributionPage, error)
}

// DecisionApplier applies admin decisions and reads their audit trail.
type DecisionApplier interface {
	ApplyDecision(ctx context.Context, adminID, contributionID int64, decision models.Decision, notes *string) (*models.Contribution, models.DecisionOutcome, error)
	ListLogs(ctx context.Context, adminID, contributionID int64) ([]models.VerificationLog, error)
}

// VerifyRequest represents the JSON body of an admin decision
// swagger:model VerifyRequest
type VerifyRequest struct {
	// Decision
	// required: true
	// enum: APPROVE,REJECT,REQUEST_CHANGES
	// default: APPROVE
	Decision string `json:"decision" validate:"required,oneof=APPROVE REJECT REQUEST_CHANGES"`

	// Optional reviewer notes, up to 5000 characters
	// default: Looks good
	Notes *string `json:"notes" validate:"omitempty,max=5000"`
}

// VerifyResponse represents the result of an admin decision
// swagger:model VerifyResponse
type VerifyResponse struct {
	// Contribution after the call
	Contribution *models.Contribution `json:"contribution"`

	// APPLIED or ALREADY_DECIDED
	// default: APPLIED
	Outcome models.DecisionOutcome `json:"outcome"`

	// Human readable summary
	// default: Contribution is now VERIFIED
	Message string `json:"message"`
}

// NewPendingHandler returns an HTTP handler for the review queue.
// @Summary Get pending submissions
// @Description Returns PENDING contributions oldest first, each with its owner
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} models.ContributionPage "Pending contributions"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Failure 422 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/pending [get]
func NewPendingHandler(svc PendingLister, pages PageConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		page, err := pages.Parse(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		result, err := svc.ListPending(r.Context(), p.UserID, page)
		if err != nil {
			if errors.Is(err, services.ErrAuthorizationDenied) {
				writeError(w, http.StatusForbidden, "Admin access required")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewVerifyHandler returns an HTTP handler applying an admin decision.
// @Summary Verify or reject submission
// @Description Applies APPROVE, REJECT or REQUEST_CHANGES to a PENDING contribution. Decisions on already decided contributions are logged and answered with outcome ALREADY_DECIDED.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Contribution id"
// @Param verifyRequest body handlers.VerifyRequest true "Verify Request"
// @Success 200 {object} handlers.VerifyResponse "Verification complete"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Failure 404 {object} handlers.ErrorResponse "Submission not found"
// @Failure 422 {object} handlers.ErrorResponse "Validation error"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/verify/{id} [post]
func NewVerifyHandler(svc DecisionApplier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		id, ok := contributionID(w, r)
		if !ok {
			return
		}

		var req VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		decision, notes, err := validateVerify(req)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		contribution, outcome, err := svc.ApplyDecision(r.Context(), p.UserID, id, decision, notes)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAuthorizationDenied):
				writeError(w, http.StatusForbidden, "Admin access required")
			case errors.Is(err, services.ErrContributionNotFound):
				writeError(w, http.StatusNotFound, "Submission not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		message := "Contribution is now " + string(contribution.Status)
		if outcome == models.OutcomeAlreadyDecided {
			message = "Contribution was already " + string(contribution.Status)
		}

		writeJSON(w, http.StatusOK, VerifyResponse{
			Contribution: contribution,
			Outcome:      outcome,
			Message:      message,
		})
	}
}

// NewVerificationLogsHandler returns an HTTP handler for a contribution's audit trail.
// @Summary Get verification log
// @Description Returns every decision attempt on a contribution, oldest first, duplicates included
// @Tags admin
// @Produce json
// @Param id path int true "Contribution id"
// @Success 200 {array} models.VerificationLog "Audit trail"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Failure 404 {object} handlers.ErrorResponse "Submission not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/contributions/{id}/logs [get]
func NewVerificationLogsHandler(svc DecisionApplier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		id, ok := contributionID(w, r)
		if !ok {
			return
		}

		logs, err := svc.ListLogs(r.Context(), p.UserID, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAuthorizationDenied):
				writeError(w, http.StatusForbidden, "Admin access required")
			case errors.Is(err, services.ErrContributionNotFound):
				writeError(w, http.StatusNotFound, "Submission not found")
			default:
				writeInternalError(w, r, err)
			}
			return
		}
		if logs == nil {
			logs = []models.VerificationLog{}
		}

		writeJSON(w, http.StatusOK, logs)
	}
}
