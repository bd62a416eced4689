package flow

import (
	"context"
	"errors"
)

// RegistrationState enumerates the linear steps of signup. There is no
// way to skip forward: each step must complete before the next becomes
// available.
type RegistrationState int

const (
	// EnterEmail: no code has been requested yet.
	EnterEmail RegistrationState = iota
	// CodeSent: a verification code was emailed and awaits entry.
	CodeSent
	// Verified: the code matched; the signup form may be submitted for
	// the verified email only.
	Verified
)

var (
	// ErrNoCodeSent is returned when a code is verified before one was
	// requested.
	ErrNoCodeSent = errors.New("no verification code has been requested")

	// ErrNotVerified blocks signup until verification has completed for
	// the email currently on the form.
	ErrNotVerified = errors.New("email has not been verified")
)

// VerificationService is the slice of the backend the registration flow
// needs.
type VerificationService interface {
	SendVerificationCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error
}

// Registration tracks signup progress. The struct is JSON-serializable
// so handlers can park it in the session store between requests.
type Registration struct {
	State RegistrationState `json:"state"`
	Email string            `json:"email"`
}

// SendCode requests a verification code for the email. Re-sending is
// allowed from any step and restarts verification for the new email.
func (r *Registration) SendCode(ctx context.Context, svc VerificationService, email string) error {
	if err := svc.SendVerificationCode(ctx, email); err != nil {
		return err
	}
	r.Email = email
	r.State = CodeSent
	return nil
}

// Verify checks the user-supplied code against the email the code was
// sent to. Only a successful check reaches the Verified state.
func (r *Registration) Verify(ctx context.Context, svc VerificationService, code string) error {
	if r.State != CodeSent {
		return ErrNoCodeSent
	}
	if err := svc.VerifyCode(ctx, r.Email, code); err != nil {
		return err
	}
	r.State = Verified
	return nil
}

// CanSubmit reports whether the signup form may be submitted for the
// given email: verification must have succeeded for exactly that email.
func (r *Registration) CanSubmit(email string) bool {
	return r.State == Verified && email != "" && r.Email == email
}

// EnsureSubmittable returns ErrNotVerified unless CanSubmit holds.
func (r *Registration) EnsureSubmittable(email string) error {
	if !r.CanSubmit(email) {
		return ErrNotVerified
	}
	return nil
}
