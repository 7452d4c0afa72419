package session_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/comment-board-api/internal/session"
)

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := session.GenerateID()
		if err != nil {
			t.Fatalf("GenerateID failed: %v", err)
		}
		if id == "" {
			t.Fatal("Expected non-empty id")
		}
		if seen[id] {
			t.Fatalf("Duplicate session id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestSignVerify_RoundTrip(t *testing.T) {
	signed := session.Sign("some-session-id", "secret")

	id, ok := session.Verify(signed, "secret")
	if !ok {
		t.Fatal("Expected signature to verify")
	}
	if id != "some-session-id" {
		t.Errorf("Expected original id, got %q", id)
	}
}

func TestVerify_Rejects(t *testing.T) {
	signed := session.Sign("some-session-id", "secret")

	cases := []struct {
		name  string
		value string
	}{
		{"wrong secret", session.Sign("some-session-id", "other-secret")},
		{"tampered id", strings.Replace(signed, "some", "else", 1)},
		{"no separator", "justanid"},
		{"empty value", ""},
		{"empty id", "." + strings.SplitN(signed, ".", 2)[1]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := session.Verify(tc.value, "secret"); ok {
				t.Error("Expected verification to fail")
			}
		})
	}
}

func TestSessionExpired(t *testing.T) {
	live := session.Session{ExpiresAt: time.Now().Add(time.Hour)}
	if live.Expired() {
		t.Error("Future expiry should not be expired")
	}

	stale := session.Session{ExpiresAt: time.Now().Add(-time.Minute)}
	if !stale.Expired() {
		t.Error("Past expiry should be expired")
	}
}

func TestSetCookie(t *testing.T) {
	w := httptest.NewRecorder()
	session.SetCookie(w, "signed-value", time.Now().Add(24*time.Hour), session.CookieOptions{
		Secure: true,
	})

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Name != session.CookieName {
		t.Errorf("Expected cookie name %q, got %q", session.CookieName, c.Name)
	}
	if c.Value != "signed-value" {
		t.Errorf("Expected cookie value, got %q", c.Value)
	}
	if !c.HttpOnly {
		t.Error("Cookie should be httpOnly")
	}
	if !c.Secure {
		t.Error("Cookie should be secure")
	}
	if c.MaxAge < 23*60*60 || c.MaxAge > 24*60*60 {
		t.Errorf("Expected ~24h max age, got %d", c.MaxAge)
	}
}

func TestClearCookie(t *testing.T) {
	w := httptest.NewRecorder()
	session.ClearCookie(w, session.CookieOptions{})

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("Expected MaxAge -1, got %d", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Errorf("Expected empty value, got %q", cookies[0].Value)
	}
}
