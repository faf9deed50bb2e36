package handlers

import (
	"context"
	"net/http"
	"strings"

	"blogapi/apperr"
	"blogapi/auth"
	"blogapi/models"
	"blogapi/repository"
)

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.RoleAdmin
}

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityFrom returns the caller identity, or nil for anonymous requests.
func IdentityFrom(ctx context.Context) *Identity {
	ident, _ := ctx.Value(identityKey).(*Identity)
	return ident
}

// AuthMiddleware turns bearer tokens into request identities. The role comes
// from the user row, not the token, so a role change takes effect on the
// next request rather than at the next login.
type AuthMiddleware struct {
	Auth  *auth.AuthService
	Users repository.UserRepository
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func (m *AuthMiddleware) identityFromRequest(r *http.Request) (*Identity, error) {
	token, ok := BearerToken(r)
	if !ok {
		return nil, apperr.Unauthorized("No token provided")
	}

	claims, err := m.Auth.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	user, err := m.Users.GetUserByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	return &Identity{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// RequireAuth rejects the request with 401 unless a valid bearer token is
// presented, then attaches the identity for downstream handlers.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, err := m.identityFromRequest(r)
		if err != nil {
			WriteAppError(w, err)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, ident)))
	}
}

// RequireAdmin additionally rejects authenticated non-admins with 403.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		if !IdentityFrom(r.Context()).IsAdmin() {
			WriteAppError(w, apperr.Forbidden("Admin access required"))
			return
		}
		next(w, r)
	})
}

// OptionalAuth attaches an identity when a valid token is presented and
// leaves the request anonymous otherwise. Used by routes whose response
// depends on who is asking but that never require credentials.
func (m *AuthMiddleware) OptionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ident, err := m.identityFromRequest(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), identityKey, ident))
		}
		next(w, r)
	}
}
