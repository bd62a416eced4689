package api

import (
	"context"
	"net/http"
)

// Credential and signup payloads mirror the auth endpoints. None of
// these calls carry a bearer token.

type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type SignupRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// TokenGrant is the payload of a successful login or signup: the opaque
// bearer token plus the role the backend assigned to it.
type TokenGrant struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// authEnvelope wraps auth responses: {success, message, data}.
type authEnvelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    TokenGrant `json:"data"`
}

// Login exchanges credentials for a token grant. A well-formed but
// unsuccessful envelope is reported as an *Error carrying the server's
// message so the login form can display it.
func (c *Client) Login(ctx context.Context, req LoginRequest) (TokenGrant, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, req, &env); err != nil {
		return TokenGrant{}, err
	}
	if !env.Success || env.Data.Token == "" {
		msg := env.Message
		if msg == "" {
			msg = "login failed"
		}
		return TokenGrant{}, &Error{Status: http.StatusOK, Message: msg}
	}
	return env.Data, nil
}

// Signup registers a new account and, like Login, returns a token grant
// on success so the user is signed in immediately.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (TokenGrant, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", nil, req, &env); err != nil {
		return TokenGrant{}, err
	}
	if env.Data.Token == "" {
		msg := env.Message
		if msg == "" {
			msg = "signup failed"
		}
		return TokenGrant{}, &Error{Status: http.StatusOK, Message: msg}
	}
	return env.Data, nil
}

// SendVerificationCode asks the backend to email a verification code.
func (c *Client) SendVerificationCode(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/send-verification-code", "", nil, body, &env); err != nil {
		return err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "could not send verification code"
		}
		return &Error{Status: http.StatusOK, Message: msg}
	}
	return nil
}

// VerifyCode checks a user-supplied code against the email it was sent
// to. Verification must succeed before signup becomes available.
func (c *Client) VerifyCode(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/verify-code", "", nil, body, &env); err != nil {
		return err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "verification code is not valid"
		}
		return &Error{Status: http.StatusOK, Message: msg}
	}
	return nil
}

// ForgotPassword requests a temporary password for the given email.
// The backend always responds success-shaped regardless of whether the
// email matched, to avoid account enumeration; errors here are
// transport-level only.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", "", nil, map[string]string{"email": email}, nil)
}

// ForgotID requests an id reminder for the given email. Same
// enumeration-safe shape as ForgotPassword.
func (c *Client) ForgotID(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-id", "", nil, map[string]string{"email": email}, nil)
}
