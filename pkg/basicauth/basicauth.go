// Package basicauth implements credential parsing and password hashing for
// HTTP Basic Authentication.
//
// Every protected request carries Authorization: Basic base64("email:password")
// and is authenticated from scratch: no sessions, no tokens, no expiry.
package basicauth

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrNoCredentials is returned when the Authorization header is missing,
// malformed, or does not decode to an "email:password" pair.
var ErrNoCredentials = errors.New("basicauth: missing or malformed credentials")

// Credentials is the email/password pair extracted from a request.
type Credentials struct {
	Email    string
	Password string
}

// Parse extracts Basic credentials from r.
// Failures (no header, bad base64, missing colon, empty email or password)
// all collapse into ErrNoCredentials so the caller answers uniformly.
func Parse(r *http.Request) (Credentials, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Basic ") {
		return Credentials{}, ErrNoCredentials
	}

	encoded := strings.TrimSpace(strings.TrimPrefix(header, "Basic "))
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Credentials{}, ErrNoCredentials
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return Credentials{}, ErrNoCredentials
	}

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Credentials{}, ErrNoCredentials
	}

	return Credentials{Email: email, Password: password}, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
