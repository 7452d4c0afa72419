package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/comment-board-api/internal/config"
	"github.com/comment-board-api/internal/mocks"
	"github.com/comment-board-api/internal/models"
	"github.com/comment-board-api/internal/service"
	"github.com/comment-board-api/internal/session"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func sessionFixture(id string, isAdmin bool, ttl time.Duration) session.Session {
	return session.Session{
		SessionID: id,
		IsAdmin:   isAdmin,
		ExpiresAt: time.Now().Add(ttl),
	}
}

const testPassword = "correct horse battery staple"

func newAuthService(t *testing.T, store *mocks.MockSessionStore) service.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	cfg := &config.AdminConfig{
		PasswordHash:  string(hash),
		SessionSecret: "test-secret",
		SessionTTL:    24 * time.Hour,
	}
	return service.NewAuthService(store, cfg, zerolog.Nop())
}

func TestLogin_CorrectPassword(t *testing.T) {
	store := mocks.NewMockSessionStore()
	auth := newAuthService(t, store)
	ctx := context.Background()

	sessionID, expiresAt, err := auth.Login(ctx, testPassword)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if sessionID == "" {
		t.Fatal("Expected a session id")
	}

	// the flag is durably committed before Login returns
	sess, ok := store.Sessions[sessionID]
	if !ok {
		t.Fatal("Session not committed to store")
	}
	if !sess.IsAdmin {
		t.Error("Session should carry the admin flag")
	}

	ttl := time.Until(expiresAt)
	if ttl < 23*time.Hour || ttl > 24*time.Hour {
		t.Errorf("Expected ~24h expiry, got %v", ttl)
	}

	if !auth.IsAuthorized(ctx, sessionID) {
		t.Error("Fresh login should be authorized")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	store := mocks.NewMockSessionStore()
	auth := newAuthService(t, store)

	_, _, err := auth.Login(context.Background(), "wrong password")
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.Sessions) != 0 {
		t.Error("No session may be created for a failed login")
	}
}

func TestLogin_MalformedHashIsNotInvalidCredentials(t *testing.T) {
	store := mocks.NewMockSessionStore()
	cfg := &config.AdminConfig{
		PasswordHash:  "not-a-bcrypt-hash",
		SessionSecret: "test-secret",
		SessionTTL:    24 * time.Hour,
	}
	auth := service.NewAuthService(store, cfg, zerolog.Nop())

	_, _, err := auth.Login(context.Background(), testPassword)
	if err == nil {
		t.Fatal("Expected error for malformed hash")
	}
	if errors.Is(err, models.ErrInvalidCredentials) {
		t.Error("A verifier failure must not be reported as bad credentials")
	}
}

func TestLogin_SessionCommitFailure(t *testing.T) {
	store := mocks.NewMockSessionStore()
	store.CreateError = errors.New("redis down")
	auth := newAuthService(t, store)

	_, _, err := auth.Login(context.Background(), testPassword)
	if err == nil {
		t.Fatal("Login must fail when the session commit fails")
	}
}

func TestLogout_RevokesAuthorization(t *testing.T) {
	store := mocks.NewMockSessionStore()
	auth := newAuthService(t, store)
	ctx := context.Background()

	sessionID, _, err := auth.Login(ctx, testPassword)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	auth.Logout(ctx, sessionID)

	if auth.IsAuthorized(ctx, sessionID) {
		t.Error("Authorization must be revoked after logout")
	}
	if len(store.Sessions) != 0 {
		t.Error("Session should be removed from the store")
	}
}

func TestLogout_MissingSessionIsFine(t *testing.T) {
	store := mocks.NewMockSessionStore()
	auth := newAuthService(t, store)

	// neither call may panic or fail observably
	auth.Logout(context.Background(), "")
	auth.Logout(context.Background(), "never-existed")
}

func TestIsAuthorized_AbsentSession(t *testing.T) {
	store := mocks.NewMockSessionStore()
	auth := newAuthService(t, store)

	if auth.IsAuthorized(context.Background(), "") {
		t.Error("Empty session id must not be authorized")
	}
	if auth.IsAuthorized(context.Background(), "unknown") {
		t.Error("Unknown session must not be authorized")
	}
}

func TestIsAuthorized_ExpiredSession(t *testing.T) {
	store := mocks.NewMockSessionStore()
	auth := newAuthService(t, store)
	ctx := context.Background()

	store.Sessions["stale"] = sessionFixture("stale", true, -time.Minute)

	if auth.IsAuthorized(ctx, "stale") {
		t.Error("Expired session must not be authorized")
	}
	if _, ok := store.Sessions["stale"]; ok {
		t.Error("Expired session should be cleaned up on read")
	}
}

func TestIsAuthorized_NonAdminSession(t *testing.T) {
	store := mocks.NewMockSessionStore()
	auth := newAuthService(t, store)

	store.Sessions["plain"] = sessionFixture("plain", false, time.Hour)

	if auth.IsAuthorized(context.Background(), "plain") {
		t.Error("Session without the admin flag must not be authorized")
	}
}

func TestIsAuthorized_StoreFailureDeniesAccess(t *testing.T) {
	store := mocks.NewMockSessionStore()
	auth := newAuthService(t, store)
	ctx := context.Background()

	sessionID, _, err := auth.Login(ctx, testPassword)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	store.GetError = errors.New("redis down")
	if auth.IsAuthorized(ctx, sessionID) {
		t.Error("A store failure must deny, never grant, access")
	}
}
