package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username, 3-50 alphanumeric characters or underscores
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,min=3,max=50,username"`

	// Password, at least 8 characters with upper, lower and digit
	// required: true
	// default: Secret123
	Password string `json:"password" validate:"required,min=8,hasupper,haslower,hasdigit"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email,max=255"`
}

// UserResponse represents a registered user
// swagger:model UserResponse
type UserResponse struct {
	// User id
	// default: 1
	ID int64 `json:"id"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// Lower-cased username
	// default: john_doe
	Username string `json:"username"`

	// Admin flag
	// default: false
	IsAdmin bool `json:"is_admin"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Usernames are stored lower-cased and must be unique, as must emails. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.UserResponse "User registered successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Email or username already taken"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		username, email, err := ValidateRegistration(req.Username, req.Password, req.Email)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := svc.Register(r.Context(), username, req.Password, email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusConflict, "Email already registered")
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusConflict, "Username already taken")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "User already exists")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		})
	}
}
