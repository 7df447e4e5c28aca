// Package session issues and verifies the signed tokens that back browser
// sessions. A token carries only the account id; the account record itself
// is reloaded from the store on every request.
package session

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie the session token travels in.
const CookieName = "session"

const (
	DefaultTTL  = 24 * time.Hour
	RememberTTL = 30 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid session token")

// Manager signs and parses session tokens (HS256).
type Manager struct {
	secret      []byte
	ttl         time.Duration
	rememberTTL time.Duration
}

// NewManager builds a Manager. Zero durations fall back to the defaults.
func NewManager(secret string, ttl, rememberTTL time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if rememberTTL <= 0 {
		rememberTTL = RememberTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, rememberTTL: rememberTTL}
}

// Issue signs a token whose subject is the decimal account id. With remember
// set the token lives for the extended duration.
func (m *Manager) Issue(accountID int64, remember bool) (string, time.Duration, error) {
	ttl := m.ttl
	if remember {
		ttl = m.rememberTTL
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", 0, err
	}
	return token, ttl, nil
}

// Parse verifies the signature and expiry and returns the token subject.
// Every defect (bad signature, wrong algorithm, expiry, garbage) collapses
// into ErrInvalidToken; the caller treats all of them as "anonymous".
func (m *Manager) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Cookie wraps a token for the browser. Without remember the cookie is
// session-scoped (no MaxAge) and dies with the browser; with remember it
// persists as long as the token.
func Cookie(token string, ttl time.Duration, remember bool) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		c.MaxAge = int(ttl.Seconds())
	}
	return c
}

// ClearCookie expires the session cookie. Logout touches nothing but this.
func ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
