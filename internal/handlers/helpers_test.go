package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-veritas/internal/middlewares"
	"github.com/sbilibin2017/gw-veritas/internal/models"
)

// asUser attaches an authenticated caller to the request.
func asUser(r *http.Request, userID int64, isAdmin bool) *http.Request {
	ctx := middlewares.WithPrincipal(r.Context(), &models.Principal{UserID: userID, IsAdmin: isAdmin})
	return r.WithContext(ctx)
}

// withID sets the {id} route parameter the way chi does.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

var testPages = PageConfig{DefaultLimit: 20, MaxLimit: 100}
