package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/services"
)

//go:generate mockgen -source=assets.go -destination=assets_mock.go -package=handlers

// AssetLister lists the public catalog.
type AssetLister interface {
	ListAssets(ctx context.Context, page models.Page) (*models.ContributionPage, error)
}

// UploadPresigner hands out upload URLs.
type UploadPresigner interface {
	Presign(ctx context.Context, userID int64, filename, contentType string) (*models.PresignedUpload, error)
}

// PresignRequest represents the JSON body of a presign call
// swagger:model PresignRequest
type PresignRequest struct {
	// Original file name
	// required: true
	// default: logo.png
	Filename string `json:"filename"`

	// MIME type
	// required: true
	// default: image/png
	ContentType string `json:"content_type"`
}

// NewAssetsHandler returns an HTTP handler for the public catalog.
// @Summary Get verified assets
// @Description Returns VERIFIED contributions newest first. No authentication required.
// @Tags assets
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} models.ContributionPage "Verified contributions"
// @Failure 422 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /assets [get]
func NewAssetsHandler(svc AssetLister, pages PageConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pages.Parse(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		result, err := svc.ListAssets(r.Context(), page)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewPresignHandler returns an HTTP handler issuing upload URLs.
// @Summary Generate presigned upload URL
// @Description Returns an upload URL and the final file URL for an allowed content type
// @Tags assets
// @Accept json
// @Produce json
// @Param presignRequest body handlers.PresignRequest true "Presign Request"
// @Success 200 {object} models.PresignedUpload "Presigned URL generated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 422 {object} handlers.ErrorResponse "Invalid filename or content type"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assets/presign [post]
func NewPresignHandler(svc UploadPresigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req PresignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		upload, err := svc.Presign(r.Context(), p.UserID, req.Filename, req.ContentType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrFilenameRequired):
				writeError(w, http.StatusUnprocessableEntity, "Filename required")
			case errors.Is(err, services.ErrContentTypeNotAccepted):
				writeError(w, http.StatusUnprocessableEntity, err.Error())
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, upload)
	}
}
