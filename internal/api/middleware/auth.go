package middleware

import (
	"context"
	"errors"
	"net/http"

	"fitastic/internal/app/service"
	"fitastic/internal/common"
	"fitastic/internal/domain/model"
	"fitastic/internal/domain/repository"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey   contextKey = "userID"
	UsernameCtxKey contextKey = "username"
	UserRoleCtxKey contextKey = "userRole"
)

// AuthMiddleware is the per-request authentication gate. It never writes to
// the stores; all token mutation happens in the auth service.
type AuthMiddleware struct {
	authService *service.AuthService
	userRepo    repository.UserRepository
}

func NewAuthMiddleware(authService *service.AuthService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{authService: authService, userRepo: userRepo}
}

// Authenticate runs after jwtauth.Verifier. A missing or malformed bearer
// token passes through unauthenticated and the per-route guards reject
// later; the only hard failure here is a verified token whose subject no
// longer maps to a user record. Identity is only established when the
// token is live in the store.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			next.ServeHTTP(w, r)
			return
		}

		username := token.Subject()
		if username == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.userRepo.FindByUsername(r.Context(), username)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				common.RespondWithError(w, http.StatusUnauthorized, "Unknown user")
				return
			}
			common.RespondWithDomainError(w, err)
			return
		}

		raw := jwtauth.TokenFromHeader(r)
		valid, err := m.authService.IsValidAccessToken(r.Context(), raw, user)
		if err != nil {
			common.RespondWithDomainError(w, err)
			return
		}

		if valid {
			ctx := context.WithValue(r.Context(), UserIDCtxKey, user.ID)
			ctx = context.WithValue(ctx, UsernameCtxKey, user.Username)
			ctx = context.WithValue(ctx, UserRoleCtxKey, user.Role)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests that reached a protected route without an
// established identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(UserRoleCtxKey).(string)
		if !ok || !model.HasRole(role, model.RoleAdmin) {
			common.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Helper to get user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	userRole, ok := ctx.Value(UserRoleCtxKey).(string)
	return userRole, ok
}
