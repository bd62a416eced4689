package flow

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type fakeVerificationService struct {
	sendErr   error
	verifyErr error
	sentTo    []string
	verified  []string
}

func (s *fakeVerificationService) SendVerificationCode(_ context.Context, email string) error {
	s.sentTo = append(s.sentTo, email)
	return s.sendErr
}

func (s *fakeVerificationService) VerifyCode(_ context.Context, email, _ string) error {
	s.verified = append(s.verified, email)
	return s.verifyErr
}

func TestRegistrationHappyPath(t *testing.T) {
	var r Registration
	svc := &fakeVerificationService{}
	ctx := context.Background()

	if err := r.SendCode(ctx, svc, "new@user.com"); err != nil {
		t.Fatalf("SendCode returned error: %v", err)
	}
	if r.State != CodeSent {
		t.Fatalf("state = %v, want CodeSent", r.State)
	}
	if err := r.Verify(ctx, svc, "123456"); err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if r.State != Verified {
		t.Fatalf("state = %v, want Verified", r.State)
	}
	if !r.CanSubmit("new@user.com") {
		t.Fatal("CanSubmit must hold after verification")
	}
}

func TestVerifyBeforeSendRejected(t *testing.T) {
	var r Registration
	svc := &fakeVerificationService{}
	if err := r.Verify(context.Background(), svc, "123456"); !errors.Is(err, ErrNoCodeSent) {
		t.Fatalf("error = %v, want ErrNoCodeSent", err)
	}
	if len(svc.verified) != 0 {
		t.Fatal("verify call reached the network without a code request")
	}
}

func TestSubmitBlockedUntilVerified(t *testing.T) {
	var r Registration
	svc := &fakeVerificationService{}
	ctx := context.Background()

	if err := r.EnsureSubmittable("new@user.com"); !errors.Is(err, ErrNotVerified) {
		t.Fatalf("fresh flow error = %v, want ErrNotVerified", err)
	}
	_ = r.SendCode(ctx, svc, "new@user.com")
	if err := r.EnsureSubmittable("new@user.com"); !errors.Is(err, ErrNotVerified) {
		t.Fatalf("code-sent flow error = %v, want ErrNotVerified", err)
	}
	_ = r.Verify(ctx, svc, "123456")
	if err := r.EnsureSubmittable("new@user.com"); err != nil {
		t.Fatalf("verified flow error = %v, want nil", err)
	}
}

func TestSubmitBlockedForDifferentEmail(t *testing.T) {
	var r Registration
	svc := &fakeVerificationService{}
	ctx := context.Background()

	_ = r.SendCode(ctx, svc, "new@user.com")
	_ = r.Verify(ctx, svc, "123456")
	if r.CanSubmit("other@user.com") {
		t.Fatal("signup must be blocked when the form email differs from the verified one")
	}
}

func TestResendRestartsVerification(t *testing.T) {
	var r Registration
	svc := &fakeVerificationService{}
	ctx := context.Background()

	_ = r.SendCode(ctx, svc, "a@user.com")
	_ = r.Verify(ctx, svc, "123456")
	_ = r.SendCode(ctx, svc, "b@user.com")
	if r.State != CodeSent || r.Email != "b@user.com" {
		t.Fatalf("state = %v email = %q after resend", r.State, r.Email)
	}
	if r.CanSubmit("a@user.com") || r.CanSubmit("b@user.com") {
		t.Fatal("no email is submittable after a resend")
	}
}

func TestFailedVerifyKeepsState(t *testing.T) {
	var r Registration
	svc := &fakeVerificationService{verifyErr: errors.New("verification code is not valid")}
	ctx := context.Background()

	_ = r.SendCode(ctx, svc, "a@user.com")
	if err := r.Verify(ctx, svc, "000000"); err == nil {
		t.Fatal("Verify must surface the service error")
	}
	if r.State != CodeSent {
		t.Fatalf("state = %v, want CodeSent after failure", r.State)
	}
}

func TestRegistrationSurvivesSerialization(t *testing.T) {
	// Handlers park the flow in the session store between requests.
	var r Registration
	svc := &fakeVerificationService{}
	ctx := context.Background()
	_ = r.SendCode(ctx, svc, "a@user.com")
	_ = r.Verify(ctx, svc, "123456")

	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var restored Registration
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !restored.CanSubmit("a@user.com") {
		t.Fatal("restored flow lost its verified state")
	}
}
