package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-veritas/internal/jwt"
	"github.com/sbilibin2017/gw-veritas/internal/logger"
	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/services"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PrincipalResolver loads the current state of the user behind a token.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID int64) (*models.Principal, error)
}

type principalKey struct{}

// WithPrincipal stores the authenticated caller in the context.
func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller stored by AuthMiddleware, or nil.
func PrincipalFromContext(ctx context.Context) *models.Principal {
	p, _ := ctx.Value(principalKey{}).(*models.Principal)
	return p
}

// AuthMiddleware returns a middleware that authenticates the bearer token and
// stores the resolved principal in the request context.
func AuthMiddleware(tokener Tokener, resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			principal, err := resolver.ResolvePrincipal(ctx, claims.UserID)
			if errors.Is(err, services.ErrUserNotFound) {
				log.Infow("token for unknown user", "user_id", claims.UserID)
				writeError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}
			if err != nil {
				log.Errorw("failed to resolve principal", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
		})
	}
}

// AdminOnly rejects callers whose current users-table row is not an admin.
// It must run after AuthMiddleware.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := PrincipalFromContext(r.Context())
		if principal == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !principal.IsAdmin {
			logger.FromContext(r.Context()).Infow("admin access denied", "user_id", principal.UserID)
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
