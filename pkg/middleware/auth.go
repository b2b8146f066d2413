package middleware

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/bookstore/pkg/basicauth"
	"github.com/shashiranjanraj/bookstore/pkg/response"
)

// Identity is the role-tagged account attached to the request context after
// a successful Basic Authentication check.
type Identity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// CredentialChecker resolves an email/password pair to an identity.
// Any error means the credentials are not valid.
type CredentialChecker func(email, password string) (*Identity, error)

type identityKey struct{}

// BasicAuth authenticates every request from scratch: it parses the Basic
// header, verifies the credentials through check, and stores the resulting
// identity in the request context. All failures answer 401 with a
// WWW-Authenticate challenge for the given realm.
func BasicAuth(realm string, check CredentialChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds, err := basicauth.Parse(r)
			if err != nil {
				response.Unauthorized(w, realm, "Missing Basic Auth")
				return
			}

			identity, err := check(creds.Email, creds.Password)
			if err != nil {
				response.Unauthorized(w, realm, "Invalid credentials")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromCtx returns the authenticated identity, if any.
func IdentityFromCtx(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok
}

// RoleFromCtx returns the authenticated identity's role.
func RoleFromCtx(ctx context.Context) (string, bool) {
	id, ok := IdentityFromCtx(ctx)
	if !ok {
		return "", false
	}
	return id.Role, true
}

// UserIDFromCtx returns the authenticated identity's user id.
func UserIDFromCtx(ctx context.Context) (uint, bool) {
	id, ok := IdentityFromCtx(ctx)
	if !ok {
		return 0, false
	}
	return id.ID, true
}
