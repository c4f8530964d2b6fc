package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/services"
)

//go:generate mockgen -source=submissions.go -destination=submissions_mock.go -package=handlers

// Submitter defines the interface that the submission service must implement.
type Submitter interface {
	Submit(ctx context.Context, userID int64, candidate models.ContributionCandidate) (*models.Contribution, error)
}

// MySubmissionsReader reads a user's own contributions.
type MySubmissionsReader interface {
	ListMine(ctx context.Context, userID int64, page models.Page) (*models.ContributionPage, error)
	GetMine(ctx context.Context, userID, contributionID int64) (*models.Contribution, error)
}

// SubmissionRequest represents the JSON body of a new contribution
// swagger:model SubmissionRequest
type SubmissionRequest struct {
	// Title, 1-200 characters
	// required: true
	// default: New logo
	Title string `json:"title" validate:"required,max=200"`

	// Description, 1-10000 characters
	// required: true
	// default: A vector logo for the landing page
	Description string `json:"description" validate:"required,max=10000"`

	// Contribution type
	// required: true
	// enum: idea,work,asset
	// default: asset
	Type string `json:"type" validate:"required,oneof=idea work asset"`

	// Optional HTTPS link to an uploaded file
	// default: https://files.example.com/files/logo.png
	FileURL *string `json:"file_url" validate:"omitempty,url,startswith=https://,max=500"`
}

// NewSubmitHandler returns an HTTP handler that accepts a new contribution.
// @Summary Submit new contribution
// @Description Creates a PENDING contribution owned by the caller. A user may hold a limited number of PENDING contributions at once.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submissionRequest body handlers.SubmissionRequest true "Submission Request"
// @Success 201 {object} models.Contribution "Contribution created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 409 {object} handlers.ErrorResponse "Pending limit reached"
// @Failure 422 {object} handlers.ErrorResponse "Validation error"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /submissions [post]
func NewSubmitHandler(svc Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req SubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		candidate, err := validateCandidate(req)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		contribution, err := svc.Submit(r.Context(), p.UserID, candidate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPendingLimitExceeded):
				writeError(w, http.StatusConflict, "Maximum pending submissions reached. Wait for verification before submitting more.")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusUnauthorized, "Could not validate credentials")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, contribution)
	}
}

// NewMySubmissionsHandler returns an HTTP handler listing the caller's contributions.
// @Summary Get my submissions
// @Description Returns the caller's contributions in every status, newest first
// @Tags submissions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} models.ContributionPage "User's submissions"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 422 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /submissions/mine [get]
func NewMySubmissionsHandler(svc MySubmissionsReader, pages PageConfig) http.HandlerFunc {
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

		result, err := svc.ListMine(r.Context(), p.UserID, page)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewGetSubmissionHandler returns an HTTP handler for a single owned contribution.
// @Summary Get specific submission
// @Description Returns one of the caller's contributions
// @Tags submissions
// @Produce json
// @Param id path int true "Contribution id"
// @Success 200 {object} models.Contribution "Contribution details"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not your submission"
// @Failure 404 {object} handlers.ErrorResponse "Submission not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /submissions/{id} [get]
func NewGetSubmissionHandler(svc MySubmissionsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		id, ok := contributionID(w, r)
		if !ok {
			return
		}

		contribution, err := svc.GetMine(r.Context(), p.UserID, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContributionNotFound):
				writeError(w, http.StatusNotFound, "Submission not found")
			case errors.Is(err, services.ErrNotOwner):
				writeError(w, http.StatusForbidden, "Not authorized to view this submission")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, contribution)
	}
}

// contributionID reads the {id} route parameter or replies 422.
func contributionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusUnprocessableEntity, "Invalid contribution id")
		return 0, false
	}
	return id, true
}
