package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hotelbook/booking-web/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := Session{
		Token: "opaque-token",
		Principal: model.Principal{
			ID:          "guest01",
			DisplayName: "Guest One",
			Role:        "USER",
		},
	}
	if err := store.Save(ctx, "k1", s, time.Minute); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Token != s.Token || got.Principal != s.Principal {
		t.Fatalf("Get = %+v, want %+v", got, s)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Save(ctx, "k1", Session{Token: "t"}, time.Minute)
	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := store.Get(ctx, "k1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Delete error = %v, want ErrNotFound", err)
	}
	// Deleting again must be harmless.
	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Save(ctx, "k1", Session{Token: "t"}, time.Nanosecond)
	time.Sleep(10 * time.Millisecond)
	if _, err := store.Get(ctx, "k1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after expiry error = %v, want ErrNotFound", err)
	}
}

func TestNewKeyUnique(t *testing.T) {
	a, err := NewKey()
	if err != nil {
		t.Fatalf("NewKey returned error: %v", err)
	}
	b, err := NewKey()
	if err != nil {
		t.Fatalf("NewKey returned error: %v", err)
	}
	if a == b {
		t.Fatal("NewKey returned the same key twice")
	}
	if len(a) != 64 {
		t.Fatalf("key length = %d, want 64 hex chars", len(a))
	}
}

func TestTTLFallsBackWithoutClaims(t *testing.T) {
	s := Session{Token: "not-a-jwt"}
	if got := s.TTL(30 * time.Minute); got != 30*time.Minute {
		t.Fatalf("TTL = %v, want default 30m", got)
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestTTLFollowsTokenExpiry(t *testing.T) {
	s := Session{Token: signedToken(t, time.Now().Add(2*time.Hour))}
	got := s.TTL(30 * time.Minute)
	if got <= time.Hour || got > 2*time.Hour {
		t.Fatalf("TTL = %v, want roughly 2h from the exp claim", got)
	}
}

func TestTTLExpiredTokenGetsGraceNotDefault(t *testing.T) {
	s := Session{Token: signedToken(t, time.Now().Add(-time.Hour))}
	got := s.TTL(30 * time.Minute)
	if got != expiredGrace {
		t.Fatalf("TTL = %v, want the %v grace window", got, expiredGrace)
	}
}
