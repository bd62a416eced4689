// Package handler contains the HTTP handlers behind every page and
// form of the web frontend. Handlers talk to the reservation backend
// through the API client, keep per-browser state in the session store
// and render server-side HTML. Mutating endpoints follow the
// post/redirect/get pattern: outcomes travel as ?notice= or ?error=
// query parameters on the redirect target.
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotelbook/booking-web/internal/api"
	"github.com/hotelbook/booking-web/internal/config"
	"github.com/hotelbook/booking-web/internal/middleware"
	"github.com/hotelbook/booking-web/internal/session"
)

// backendTimeout bounds every backend call issued from a handler.
const backendTimeout = 10 * time.Second

// Base bundles the dependencies shared by all handlers.
type Base struct {
	Cfg   config.Config
	API   *api.Client
	Store session.Store
}

// NewBase wires the shared handler dependencies.
func NewBase(cfg config.Config, client *api.Client, store session.Store) *Base {
	return &Base{Cfg: cfg, API: client, Store: store}
}

// reqCtx derives a bounded context from the incoming request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), backendTimeout)
}

// render executes the named page with the common chrome filled in:
// the logged-in principal plus any flash message carried on the query
// string by a preceding redirect.
func (b *Base) render(c echo.Context, page string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	if s, ok := middleware.SessionFrom(c); ok && s.Authenticated() {
		data["Principal"] = &s.Principal
	}
	if msg := c.QueryParam("error"); msg != "" {
		data["Error"] = msg
	}
	if msg := c.QueryParam("notice"); msg != "" {
		data["Notice"] = msg
	}
	return c.Render(http.StatusOK, page, data)
}

// redirectNotice sends the browser to the target with a success flash.
func redirectNotice(c echo.Context, target, msg string) error {
	return c.Redirect(http.StatusSeeOther, target+"?notice="+url.QueryEscape(msg))
}

// redirectError sends the browser to the target with an error flash.
func redirectError(c echo.Context, target, msg string) error {
	return c.Redirect(http.StatusSeeOther, target+"?error="+url.QueryEscape(msg))
}

// failBackend translates a backend call failure into a redirect. An
// authorization failure tears the whole session down and lands on the
// login page; everything else keeps the session and flashes the
// backend's message on the given target.
func (b *Base) failBackend(c echo.Context, target string, err error) error {
	c.Logger().Errorf("backend call failed: %v", err)
	if errors.Is(err, api.ErrUnauthorized) {
		b.clearSession(c)
		return redirectError(c, "/login", "your session has expired, please log in again")
	}
	return redirectError(c, target, errMessage(err))
}

// errMessage extracts the user-facing text from an error.
func errMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// putSession persists the session and refreshes the browser cookie.
// The store key is reused when the request already carried one, so a
// login from a browser holding an anonymous registration session keeps
// its cookie.
func (b *Base) putSession(c echo.Context, s session.Session) error {
	key, ok := middleware.KeyFrom(c)
	if !ok {
		var err error
		key, err = session.NewKey()
		if err != nil {
			return err
		}
	}
	ttl := s.TTL(time.Duration(b.Cfg.SessionTTLMin) * time.Minute)
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := b.Store.Save(ctx, key, s, ttl); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    key,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// clearSession removes the stored session, if any, and expires the
// cookie. Store errors are ignored: the cookie going away is what
// logs the browser out.
func (b *Base) clearSession(c echo.Context) {
	if key, ok := middleware.KeyFrom(c); ok {
		ctx, cancel := reqCtx(c)
		defer cancel()
		_ = b.Store.Delete(ctx, key)
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
