package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-veritas/internal/logger"
	"github.com/sbilibin2017/gw-veritas/internal/middlewares"
	"github.com/sbilibin2017/gw-veritas/internal/models"
)

// ErrorResponse is the body of every error reply
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// principal returns the authenticated caller or replies 401.
func principal(w http.ResponseWriter, r *http.Request) (*models.Principal, bool) {
	p := middlewares.PrincipalFromContext(r.Context())
	if p == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return p, true
}
