package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelbook/booking-web/internal/api"
	"github.com/hotelbook/booking-web/internal/middleware"
	"github.com/hotelbook/booking-web/internal/model"
	"github.com/hotelbook/booking-web/internal/session"
)

// AuthHandler serves login, logout and account recovery.
type AuthHandler struct {
	*Base
}

func NewAuthHandler(b *Base) *AuthHandler { return &AuthHandler{Base: b} }

// ----- forms -----

type loginForm struct {
	ID       string `form:"id" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type forgotForm struct {
	Email string `form:"email" validate:"required,email"`
}

// ShowLogin renders the login page. A browser that is already logged
// in is sent home instead.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if s, ok := middleware.SessionFrom(c); ok && s.Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.render(c, "login.html", map[string]any{"Title": "Log in"})
}

// Login exchanges the credentials for a bearer token and starts the
// browser session. Credentials are forwarded to the backend verbatim;
// this application never hashes or stores them.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return redirectError(c, "/login", "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return redirectError(c, "/login", validationMessage(err))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	grant, err := h.API.Login(ctx, api.LoginRequest{ID: form.ID, Password: form.Password})
	if err != nil {
		return h.failBackend(c, "/login", err)
	}

	s := session.Session{
		Token:     grant.Token,
		Principal: model.Principal{ID: form.ID, DisplayName: form.ID, Role: grant.Role},
	}
	if err := h.putSession(c, s); err != nil {
		return redirectError(c, "/login", "could not start a session, please try again")
	}
	return redirectNotice(c, "/", "welcome back")
}

// Logout destroys the browser session. The backend keeps no session of
// its own, so forgetting the token is the whole operation.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSession(c)
	return redirectNotice(c, "/login", "you have been logged out")
}

// ShowForgot renders the combined ID and password recovery page.
func (h *AuthHandler) ShowForgot(c echo.Context) error {
	return h.render(c, "forgot.html", map[string]any{"Title": "Account recovery"})
}

// ForgotID asks the backend to email the account's login ID. The
// response is deliberately the same whether or not the email exists.
func (h *AuthHandler) ForgotID(c echo.Context) error {
	var form forgotForm
	if err := c.Bind(&form); err != nil {
		return redirectError(c, "/forgot", "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return redirectError(c, "/forgot", validationMessage(err))
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.API.ForgotID(ctx, form.Email); err != nil {
		return h.failBackend(c, "/forgot", err)
	}
	return redirectNotice(c, "/forgot", "if the address is registered, your ID is on its way")
}

// ForgotPassword asks the backend to start a password reset.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var form forgotForm
	if err := c.Bind(&form); err != nil {
		return redirectError(c, "/forgot", "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return redirectError(c, "/forgot", validationMessage(err))
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.API.ForgotPassword(ctx, form.Email); err != nil {
		return h.failBackend(c, "/forgot", err)
	}
	return redirectNotice(c, "/forgot", "if the address is registered, reset instructions are on their way")
}
