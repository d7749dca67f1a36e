// Package auth resolves session users from inbound requests and gates the
// admin mutation surface.
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/google/uuid"
)

const defaultCookieName = "blog_session"
const defaultSessionTTL = 24 * time.Hour

// User is the identity resolved from a session cookie.
type User struct {
	ID    uuid.UUID
	Email string
	Admin bool
}

// SessionConfig defines how session cookies are issued and verified.
type SessionConfig struct {
	// Secret signs session tokens (HS256). Must be non-empty.
	Secret []byte
	// TTL bounds session lifetime. Defaults to 24h.
	TTL time.Duration
	// CookieName overrides the session cookie name.
	CookieName string
	// Secure marks issued cookies as HTTPS-only.
	Secure bool
}

// SessionManager issues and verifies the signed session cookie.
type SessionManager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
	logger     logging.Logger
	now        func() time.Time
}

// SessionOption mutates the session manager configuration.
type SessionOption func(*SessionManager)

// WithSessionLogger injects the session logger. Defaults to a no-op logger.
func WithSessionLogger(logger logging.Logger) SessionOption {
	return func(m *SessionManager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithSessionClock overrides the time source, mainly for tests.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewSessionManager constructs a session manager from the supplied config.
func NewSessionManager(cfg SessionConfig, opts ...SessionOption) (*SessionManager, error) {
	if len(cfg.Secret) == 0 {
		return nil, fmt.Errorf("auth: session secret is required")
	}

	m := &SessionManager{
		secret:     cfg.Secret,
		ttl:        cfg.TTL,
		cookieName: cfg.CookieName,
		secure:     cfg.Secure,
		logger:     logging.NoOp(),
		now:        time.Now,
	}
	if m.ttl <= 0 {
		m.ttl = defaultSessionTTL
	}
	if strings.TrimSpace(m.cookieName) == "" {
		m.cookieName = defaultCookieName
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Issue signs a session token for the given email and sets it as an HttpOnly
// cookie on the response.
func (m *SessionManager) Issue(w http.ResponseWriter, email string) error {
	now := m.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.ToLower(strings.TrimSpace(email)),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: strings.ToLower(strings.TrimSpace(email)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("auth: sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// UserFromRequest resolves the session user, if any. Missing, malformed, or
// expired cookies resolve to an anonymous (nil) user — public pages treat
// that as a normal state, not an error.
func (m *SessionManager) UserFromRequest(r *http.Request) *User {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return nil
	}

	var claims sessionClaims
	_, err = jwt.ParseWithClaims(cookie.Value, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		m.logger.Debug("session token rejected", "error", err)
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return nil
	}

	return &User{
		ID:    identity.UserUUID(email),
		Email: email,
	}
}
