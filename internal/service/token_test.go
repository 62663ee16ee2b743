package service

import (
	"errors"
	"testing"
	"time"

	"kinblog/internal/config"
)

const testTokenTTL = time.Hour

func TestTokenManager_IssueAndParseRoundTrip(t *testing.T) {
	m := NewTokenManager(config.Auth{SigningKey: "round-trip-key", TokenTTL: testTokenTTL})

	token, err := m.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned empty token")
	}

	subject, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if subject != "user-123" {
		t.Fatalf("subject: got %q, want %q", subject, "user-123")
	}
}

func TestTokenManager_ParseFailures(t *testing.T) {
	m := NewTokenManager(config.Auth{SigningKey: "parse-failures-key", TokenTTL: testTokenTTL})

	cases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "malformed",
			token: func(t *testing.T) string { return "not-a-jwt" },
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				expired := NewTokenManager(config.Auth{SigningKey: "parse-failures-key", TokenTTL: -time.Minute})
				tok, err := expired.Issue("user-123")
				if err != nil {
					t.Fatalf("issue expired token: %v", err)
				}
				return tok
			},
		},
		{
			name: "signature mismatch",
			token: func(t *testing.T) string {
				other := NewTokenManager(config.Auth{SigningKey: "some-other-key", TokenTTL: testTokenTTL})
				tok, err := other.Issue("user-123")
				if err != nil {
					t.Fatalf("issue foreign token: %v", err)
				}
				return tok
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Parse(tc.token(t))
			if err == nil {
				t.Fatal("expected Parse to fail")
			}
			// all failure causes surface as the same unauthorized outcome
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
