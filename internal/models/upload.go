package models

// PresignedUpload tells a client where to upload a file and where it will be served from.
type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	ExpiresIn int    `json:"expires_in"` // Seconds
}
