package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := NewService("test-secret", 24*time.Hour)

	signed, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if signed == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", claims.Email)
	}
}

func TestIssue_NotIdempotent(t *testing.T) {
	svc := NewService("test-secret", 24*time.Hour)
	svc.now = func() time.Time { return time.Now() }

	first, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Advance the clock so the iat claim differs.
	base := time.Now()
	svc.now = func() time.Time { return base.Add(time.Second) }

	second, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if first == second {
		t.Error("expected distinct tokens for repeated issuance")
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService("test-secret", 24*time.Hour)

	signed, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Move the verification clock past the expiry.
	svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	_, err = svc.Verify(signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_ValidForFullTTL(t *testing.T) {
	svc := NewService("test-secret", 24*time.Hour)

	signed, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Just inside the expiry window.
	svc.now = func() time.Time { return time.Now().Add(23 * time.Hour) }

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("expected token still valid inside TTL, got %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", claims.Email)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewService("secret-one", 24*time.Hour)
	verifier := NewService("secret-two", 24*time.Hour)

	signed, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = verifier.Verify(signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewService("test-secret", 24*time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(input); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", input, err)
		}
	}
}
