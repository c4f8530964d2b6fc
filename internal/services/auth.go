package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-veritas/internal/logger"
	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", ErrUserAlreadyExists)
	ErrUsernameTaken      = fmt.Errorf("%w: username already taken", ErrUserAlreadyExists)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, email, username, passwordHash string, isAdmin bool) (*models.UserDB, error)
}

// TokenGenerator issues access tokens for a user id.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration, login and principal resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a regular user. The username is stored lower-cased.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) (*models.UserDB, error) {
	return svc.create(ctx, username, password, email, false)
}

// CreateAdmin creates a user with admin rights. It is the only way is_admin gets set.
func (svc *AuthService) CreateAdmin(ctx context.Context, username, password, email string) (*models.UserDB, error) {
	return svc.create(ctx, username, password, email, true)
}

func (svc *AuthService) create(ctx context.Context, username, password, email string, isAdmin bool) (*models.UserDB, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.TrimSpace(email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, email, username, string(hashedPassword), isAdmin)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		logger.FromContext(ctx).Infow("user already exists", "username", username, "email", email, "err", err)
		switch {
		case strings.Contains(err.Error(), "email"):
			return nil, ErrEmailTaken
		case strings.Contains(err.Error(), "username"):
			return nil, ErrUsernameTaken
		}
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save user", "err", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("user registered", "user_id", user.ID, "is_admin", user.IsAdmin)
	return user, nil
}

// Login authenticates a user by email or username and returns an access token.
// Unknown identifiers still run a bcrypt comparison.
func (svc *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	user, err := svc.reader.GetByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		logger.FromContext(ctx).Infow("login for unknown identifier")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.FromContext(ctx).Infow("invalid credentials", "user_id", user.ID)
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// ResolvePrincipal reads the user behind a token. Admin rights come from this read.
func (svc *AuthService) ResolvePrincipal(ctx context.Context, userID int64) (*models.Principal, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to resolve principal", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &models.Principal{UserID: user.ID, IsAdmin: user.IsAdmin}, nil
}

var (
	dummyHashOnce  sync.Once
	dummyHashValue []byte
)

func dummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHashValue, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)
	})
	return dummyHashValue
}
