package auth

import (
	"testing"
	"time"
)

func TestIssueParseRoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != "u1" {
		t.Fatalf("expected u1, got %q", userID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	token, err := m.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager("secret", time.Hour)

	if _, err := m.Parse("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
