package auth

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/goliatone/go-blog/internal/identity"
)

var (
	// ErrUnauthorized signals that a request must be redirected to the login
	// challenge before touching any admin operation.
	ErrUnauthorized = errors.New("auth: unauthorized")
	// ErrInvalidCredentials reports a failed login attempt.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)

// Gate authorizes the single configured admin identity. It never mutates
// state; the only side effect of a failed check is the error itself.
type Gate struct {
	sessions     *SessionManager
	adminEmail   string
	passwordHash []byte
}

// NewGate wires the gate to the session manager and the configured admin
// credentials (email + bcrypt password hash).
func NewGate(sessions *SessionManager, adminEmail string, passwordHash []byte) *Gate {
	return &Gate{
		sessions:     sessions,
		adminEmail:   strings.ToLower(strings.TrimSpace(adminEmail)),
		passwordHash: passwordHash,
	}
}

// Resolve returns the session user for the request, with the admin flag set,
// or nil for anonymous traffic.
func (g *Gate) Resolve(r *http.Request) *User {
	user := g.sessions.UserFromRequest(r)
	if user == nil {
		return nil
	}
	user.Admin = user.Email == g.adminEmail
	return user
}

// RequireAdmin resolves the current user and fails with ErrUnauthorized
// unless that user is the admin. Must run before any admin read or write.
func (g *Gate) RequireAdmin(r *http.Request) (*User, error) {
	user := g.Resolve(r)
	if user == nil || !user.Admin {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// Authenticate checks login credentials against the configured admin account
// and returns the admin user on success.
func (g *Gate) Authenticate(email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || email != g.adminEmail || len(g.passwordHash) == 0 {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &User{
		ID:    identity.UserUUID(email),
		Email: email,
		Admin: true,
	}, nil
}
