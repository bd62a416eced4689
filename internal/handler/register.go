package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hotelbook/booking-web/internal/api"
	"github.com/hotelbook/booking-web/internal/flow"
	"github.com/hotelbook/booking-web/internal/middleware"
	"github.com/hotelbook/booking-web/internal/model"
	"github.com/hotelbook/booking-web/internal/session"
)

// RegisterHandler serves the two-step signup: email verification first,
// then the account form. Progress lives in the session so each step is
// an ordinary page load; there is no way to reach the form without a
// verified email.
type RegisterHandler struct {
	*Base
}

func NewRegisterHandler(b *Base) *RegisterHandler { return &RegisterHandler{Base: b} }

// ----- forms -----

type sendCodeForm struct {
	Email string `form:"email" validate:"required,email"`
}

type verifyCodeForm struct {
	Code string `form:"code" validate:"required"`
}

type signupForm struct {
	Email           string `form:"email" validate:"required,email"`
	ID              string `form:"id" validate:"required,min=4,max=20"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"passwordConfirm" validate:"required,eqfield=Password"`
	Nickname        string `form:"nickname" validate:"required,max=30"`
}

// registration returns the in-progress registration parked in the
// session, or a fresh one.
func registration(c echo.Context) *flow.Registration {
	if s, ok := middleware.SessionFrom(c); ok && s.Registration != nil {
		return s.Registration
	}
	return &flow.Registration{}
}

// saveRegistration parks the registration back into the session,
// preserving whatever else the session carries.
func (h *RegisterHandler) saveRegistration(c echo.Context, reg *flow.Registration) error {
	s, _ := middleware.SessionFrom(c)
	s.Registration = reg
	return h.putSession(c, s)
}

// ShowRegister renders whichever signup step the browser has reached.
func (h *RegisterHandler) ShowRegister(c echo.Context) error {
	reg := registration(c)
	if reg.State == flow.Verified {
		return h.render(c, "register_form.html", map[string]any{
			"Title": "Sign up",
			"Email": reg.Email,
		})
	}
	return h.render(c, "register_email.html", map[string]any{
		"Title":    "Sign up",
		"Email":    reg.Email,
		"CodeSent": reg.State == flow.CodeSent,
	})
}

// SendCode requests a verification code for the entered email.
// Re-sending restarts verification, including for a changed address.
func (h *RegisterHandler) SendCode(c echo.Context) error {
	var form sendCodeForm
	if err := c.Bind(&form); err != nil {
		return redirectError(c, "/register", "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return redirectError(c, "/register", validationMessage(err))
	}

	reg := registration(c)
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := reg.SendCode(ctx, h.API, form.Email); err != nil {
		return h.failBackend(c, "/register", err)
	}
	if err := h.saveRegistration(c, reg); err != nil {
		return redirectError(c, "/register", "could not save your progress, please try again")
	}
	return redirectNotice(c, "/register", "verification code sent to "+form.Email)
}

// VerifyCode checks the entered code and, on success, unlocks the
// account form.
func (h *RegisterHandler) VerifyCode(c echo.Context) error {
	var form verifyCodeForm
	if err := c.Bind(&form); err != nil {
		return redirectError(c, "/register", "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return redirectError(c, "/register", validationMessage(err))
	}

	reg := registration(c)
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := reg.Verify(ctx, h.API, form.Code); err != nil {
		return h.failBackend(c, "/register", err)
	}
	if err := h.saveRegistration(c, reg); err != nil {
		return redirectError(c, "/register", "could not save your progress, please try again")
	}
	return redirectNotice(c, "/register", "email verified, finish creating your account")
}

// Submit creates the account. Signup is refused unless the email on
// the form is exactly the one that was verified; on success the new
// account is logged in immediately.
func (h *RegisterHandler) Submit(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		return redirectError(c, "/register", "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return redirectError(c, "/register", validationMessage(err))
	}

	reg := registration(c)
	if err := reg.EnsureSubmittable(form.Email); err != nil {
		return redirectError(c, "/register", "please verify your email address first")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	grant, err := h.API.Signup(ctx, api.SignupRequest{
		ID:       form.ID,
		Password: form.Password,
		Email:    form.Email,
		Nickname: form.Nickname,
	})
	if err != nil {
		return h.failBackend(c, "/register", err)
	}

	s := session.Session{
		Token:     grant.Token,
		Principal: model.Principal{ID: form.ID, DisplayName: form.Nickname, Role: grant.Role},
	}
	if err := h.putSession(c, s); err != nil {
		return redirectError(c, "/login", "account created, please log in")
	}
	return redirectNotice(c, "/", "welcome, "+form.Nickname)
}
