package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-veritas/internal/logger"
	"github.com/sbilibin2017/gw-veritas/internal/models"
)

// Error variables
var (
	ErrFilenameRequired       = errors.New("filename required")
	ErrContentTypeNotAccepted = errors.New("content type not allowed")
)

// AllowedContentTypes lists the MIME types accepted for uploads.
var AllowedContentTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
	"image/gif",
	"application/zip",
	"text/plain",
}

// UploadService hands out upload URLs. No storage backend is attached yet:
// the URLs point at a placeholder host and nothing is tracked.
type UploadService struct {
	baseURL string
	expiry  time.Duration
}

// NewUploadService creates a new UploadService.
func NewUploadService(baseURL string, expiry time.Duration) *UploadService {
	return &UploadService{
		baseURL: strings.TrimRight(baseURL, "/"),
		expiry:  expiry,
	}
}

// Presign validates the file metadata and returns upload and file URLs for it.
func (s *UploadService) Presign(ctx context.Context, userID int64, filename, contentType string) (*models.PresignedUpload, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, ErrFilenameRequired
	}
	if !contentTypeAllowed(contentType) {
		return nil, fmt.Errorf("%w. Allowed: %s", ErrContentTypeNotAccepted, strings.Join(AllowedContentTypes, ", "))
	}

	key := uuid.NewString() + safeExt(filename)

	logger.FromContext(ctx).Infow("upload url issued", "user_id", userID, "key", key, "content_type", contentType)

	return &models.PresignedUpload{
		UploadURL: s.baseURL + "/upload/" + key,
		FileURL:   s.baseURL + "/files/" + key,
		ExpiresIn: int(s.expiry.Seconds()),
	}, nil
}

func contentTypeAllowed(contentType string) bool {
	for _, allowed := range AllowedContentTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// safeExt returns the lower-cased extension of filename when it is plain alphanumeric.
func safeExt(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
