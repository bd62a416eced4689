// Package middleware contains reusable HTTP middleware for the web
// frontend: session loading, login gating and request throttling.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelbook/booking-web/internal/session"
)

// Context keys populated by LoadSession. Handlers read them through
// SessionFrom/KeyFrom rather than touching the context directly.
const (
	ctxSession = "session"
	ctxKey     = "session_key"
)

// LoadSession resolves the browser's session cookie against the store
// and injects the session into the request context. An absent or
// unknown cookie leaves the request anonymous; the next handler
// decides whether that matters.
func LoadSession(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			s, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return next(c)
			}
			c.Set(ctxKey, cookie.Value)
			c.Set(ctxSession, s)
			return next(c)
		}
	}
}

// RequireAuth redirects anonymous requests to the login page. It must
// run after LoadSession.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, ok := SessionFrom(c)
		if !ok || !s.Authenticated() {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// SessionFrom returns the session loaded for this request, if any.
func SessionFrom(c echo.Context) (session.Session, bool) {
	s, ok := c.Get(ctxSession).(session.Session)
	return s, ok
}

// KeyFrom returns the store key of the loaded session, if any.
func KeyFrom(c echo.Context) (string, bool) {
	k, ok := c.Get(ctxKey).(string)
	return k, ok && k != ""
}
