package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aimeevoice/aimee-web-app/internal/auth"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	u, err := auth.NewStaffUser("owner@aimee.wine", "correct-horse", "ROLE_ADMIN")
	if err != nil {
		t.Fatalf("NewStaffUser: %v", err)
	}
	tokens := auth.NewTokenProvider("test-secret", "aimee", "aimee-clients")
	return auth.NewService([]auth.StaffUser{u}, tokens, auth.NewMemoryBlacklist(), time.Hour, zap.NewNop())
}

func TestLoginAndValidate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	token, exp, err := svc.Login(ctx, "owner@aimee.wine", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || !exp.After(time.Now()) {
		t.Fatalf("unexpected token/expiry: %q %v", token, exp)
	}

	claims, err := svc.Validate(ctx, token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Email != "owner@aimee.wine" || claims.Role != "ROLE_ADMIN" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc := newService(t)

	if _, _, err := svc.Login(context.Background(), "  OWNER@Aimee.Wine ", "correct-horse"); err != nil {
		t.Fatalf("email lookup must be case-insensitive: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if _, _, err := svc.Login(ctx, "owner@aimee.wine", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@aimee.wine", "correct-horse"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("unknown user must look like bad credentials, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "owner@aimee.wine", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := svc.Validate(ctx, token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if err := svc.Logout(ctx, claims); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, err := svc.Validate(ctx, token); !errors.Is(err, auth.ErrTokenRevoked) {
		t.Fatalf("revoked token must be rejected, got %v", err)
	}
}

func TestValidateRejectsGarbageAndForeignTokens(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if _, err := svc.Validate(ctx, "not-a-jwt"); !errors.Is(err, auth.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}

	// Токен с другим секретом
	foreign := auth.NewTokenProvider("other-secret", "aimee", "aimee-clients")
	token, _, err := foreign.SignAccess(ctx, uuid.New(), "x@y.z", "ROLE_ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}
	if _, err := svc.Validate(ctx, token); !errors.Is(err, auth.ErrUnauthorized) {
		t.Fatalf("foreign token must be rejected, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	p := auth.NewTokenProvider("s", "iss", "aud")
	ctx := context.Background()
	uid := uuid.New()

	token, exp, err := p.SignAccess(ctx, uid, "a@b.c", "ROLE_ADMIN", time.Minute)
	if err != nil {
		t.Fatalf("SignAccess: %v", err)
	}

	claims, err := p.ParseAndValidateAccess(ctx, token)
	if err != nil {
		t.Fatalf("ParseAndValidateAccess: %v", err)
	}
	if claims.UserID != uid || claims.JTI == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.Exp.Equal(exp.Truncate(time.Second)) {
		t.Fatalf("exp mismatch: %v vs %v", claims.Exp, exp)
	}
}

func TestMemoryBlacklistExpiry(t *testing.T) {
	b := auth.NewMemoryBlacklist()
	ctx := context.Background()

	if err := b.BlacklistToken(ctx, "jti-1", time.Hour); err != nil {
		t.Fatalf("BlacklistToken: %v", err)
	}
	revoked, err := b.IsTokenBlacklisted(ctx, "jti-1")
	if err != nil || !revoked {
		t.Fatalf("jti-1 must be blacklisted: %v %v", revoked, err)
	}

	if err := b.BlacklistToken(ctx, "jti-2", -time.Second); err != nil {
		t.Fatalf("BlacklistToken: %v", err)
	}
	revoked, err = b.IsTokenBlacklisted(ctx, "jti-2")
	if err != nil || revoked {
		t.Fatalf("expired entry must not count as revoked: %v %v", revoked, err)
	}
}
