package sharetoken

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	codec, err := New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	token, expiresAt, err := codec.Issue("nm_123", now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !expiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expiresAt = %v", expiresAt)
	}

	namingID, err := codec.Parse(token, now.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if namingID != "nm_123" {
		t.Fatalf("naming id = %q", namingID)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	codec, _ := New("test-secret", time.Hour)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	token, _, err := codec.Issue("nm_123", now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := codec.Parse(token, now.Add(2*time.Hour)); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseRejectsForeignSecret(t *testing.T) {
	issuerCodec, _ := New("secret-a", time.Hour)
	verifierCodec, _ := New("secret-b", time.Hour)

	now := time.Now().UTC()
	token, _, err := issuerCodec.Issue("nm_123", now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifierCodec.Parse(token, now); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	codec, _ := New("test-secret", 0)
	for _, token := range []string{"", "   ", "not-a-jwt", "a.b.c"} {
		if _, err := codec.Parse(token, time.Now()); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: err = %v", token, err)
		}
	}
}

func TestNewRequiresSecret(t *testing.T) {
	if _, err := New("  ", time.Hour); err == nil {
		t.Fatalf("expected error without secret")
	}
}
