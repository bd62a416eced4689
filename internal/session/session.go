// Package session owns the authenticated principal for a browser
// session. At most one session exists per browser; it is created on
// successful login or signup and destroyed on logout, account deletion
// or any authorization failure reported by the backend.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hotelbook/booking-web/internal/flow"
	"github.com/hotelbook/booking-web/internal/model"
)

// CookieName identifies the browser session. The cookie value is an
// opaque random key; the token itself never reaches the browser.
const CookieName = "hb_session"

// Session pairs the backend-issued bearer token with the principal it
// authenticates. An anonymous session (no token) exists only to carry
// in-progress registration state between requests.
type Session struct {
	Token        string             `json:"token"`
	Principal    model.Principal    `json:"principal"`
	Registration *flow.Registration `json:"registration,omitempty"`
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool { return s.Token != "" }

// expiredGrace is the TTL given to a session whose token expiry has
// already passed: long enough for the teardown redirect to read it,
// short enough that the dead token does not linger.
const expiredGrace = time.Minute

// TTL returns how long the session should be kept, derived from the
// token's exp claim when one can be read. Claims are inspected without
// signature verification: the token is opaque to this client and only
// the backend validates it. When no expiry is readable the provided
// default applies; a token that is already expired can only produce
// 401 teardowns, so it gets a grace window rather than the default.
func (s Session) TTL(def time.Duration) time.Duration {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return def
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return def
	}
	remaining := time.Until(exp.Time)
	if remaining <= 0 {
		return expiredGrace
	}
	return remaining
}
