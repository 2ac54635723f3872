package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/KKK-90/POSTRKR-App/config"
	"github.com/KKK-90/POSTRKR-App/internal/dto"
	apperrors "github.com/KKK-90/POSTRKR-App/pkg/errors"
	"github.com/KKK-90/POSTRKR-App/pkg/jwt"
)

// ── helpers ──

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:    "test-secret-key-for-unit-testing",
		SessionTTL:   12 * time.Hour,
		AllowedUsers: []string{"KARNA", "NKR", "SBI_DOP"},
	}
}

func setupTestAuthService() (AuthService, *jwt.Manager, *mockTokenStore) {
	cfg := testAuthConfig()
	jwtMgr := jwt.NewManager(cfg)
	tokens := newMockTokenStore()
	return NewAuthService(cfg, jwtMgr, tokens, zap.NewNop()), jwtMgr, tokens
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, jwtMgr, _ := setupTestAuthService()

	sess, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "NKR"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Username != "NKR" {
		t.Errorf("expected username NKR, got %s", sess.Username)
	}
	if sess.MaxAge != int((12 * time.Hour).Seconds()) {
		t.Errorf("unexpected max age %d", sess.MaxAge)
	}

	claims, err := jwtMgr.ParseToken(sess.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Username() != "NKR" {
		t.Errorf("token subject = %s", claims.Username())
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	for _, name := range []string{"", "nkr", "MALLORY"} {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: name})
		if !errors.Is(err, ErrUnknownUser) {
			t.Errorf("%q: expected ErrUnknownUser, got %v", name, err)
		}
		if !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Errorf("%q: expected kind ErrUnauthorized", name)
		}
	}
}

// ── Authenticate ──

func TestAuthService_Authenticate(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	sess, _ := svc.Login(context.Background(), &dto.LoginRequest{Username: "KARNA"})

	user, err := svc.Authenticate(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user != "KARNA" {
		t.Errorf("expected KARNA, got %s", user)
	}

	if _, err := svc.Authenticate(context.Background(), "garbage"); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestAuthService_Authenticate_UserRemovedFromAllowList(t *testing.T) {
	cfg := testAuthConfig()
	jwtMgr := jwt.NewManager(cfg)
	token, err := jwtMgr.GenerateSessionToken("FORMER")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	svc := NewAuthService(cfg, jwtMgr, newMockTokenStore(), zap.NewNop())
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestAuthService_Authenticate_StoreOutageFailsOpen(t *testing.T) {
	svc, _, tokens := setupTestAuthService()
	sess, _ := svc.Login(context.Background(), &dto.LoginRequest{Username: "NKR"})
	tokens.err = errors.New("connection refused")

	if _, err := svc.Authenticate(context.Background(), sess.Token); err != nil {
		t.Errorf("expected a valid signature to pass during a store outage, got %v", err)
	}
}

// ── Logout ──

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, tokens := setupTestAuthService()
	sess, _ := svc.Login(context.Background(), &dto.LoginRequest{Username: "SBI_DOP"})

	if err := svc.Logout(context.Background(), sess.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if len(tokens.revoked) != 1 {
		t.Fatalf("expected one revoked id, got %d", len(tokens.revoked))
	}
	for _, ttl := range tokens.revoked {
		if ttl <= 0 || ttl > 12*time.Hour {
			t.Errorf("revocation ttl should be the remaining lifetime, got %v", ttl)
		}
	}

	if _, err := svc.Authenticate(context.Background(), sess.Token); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("revoked token should be rejected, got %v", err)
	}
}

func TestAuthService_Logout_WithoutValidToken(t *testing.T) {
	svc, _, tokens := setupTestAuthService()

	for _, token := range []string{"", "garbage"} {
		if err := svc.Logout(context.Background(), token); err != nil {
			t.Errorf("%q: expected nil, got %v", token, err)
		}
	}
	if len(tokens.revoked) != 0 {
		t.Error("nothing should be revoked")
	}
}

func TestAuthService_Logout_StoreError(t *testing.T) {
	svc, _, tokens := setupTestAuthService()
	sess, _ := svc.Login(context.Background(), &dto.LoginRequest{Username: "NKR"})
	tokens.err = errors.New("connection refused")

	if err := svc.Logout(context.Background(), sess.Token); err == nil {
		t.Error("expected an error")
	}
}
