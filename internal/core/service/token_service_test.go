package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopkeep/storefront/internal/core/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, time.January, 2, 10, 0, 0, 0, time.UTC)}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret")

	token, err := svc.Issue("root", domain.RoleAdmin, 2*time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Username != "root" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenService_ExpiresAfterTTL(t *testing.T) {
	clock := newClock()
	svc := NewTokenService("secret").WithClock(clock.Now)

	token, err := svc.Issue("root", domain.RoleAdmin, 2*time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	clock.Advance(2*time.Hour - time.Second)
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("token should still be valid just before expiry: %v", err)
	}

	clock.Advance(2 * time.Second)
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated after 2h+1s, got %v", err)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	clock := newClock()
	svc := NewTokenService("secret").WithClock(clock.Now)

	token, err := svc.Issue("alice", domain.RoleUser, 0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	clock.Advance(23 * time.Hour)
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("expected valid token within default ttl: %v", err)
	}
	clock.Advance(2 * time.Hour)
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected expiry after default ttl, got %v", err)
	}
}

func TestTokenService_RejectsForgedAndMalformed(t *testing.T) {
	svc := NewTokenService("secret")
	other := NewTokenService("other-secret")

	forged, err := other.Issue("root", domain.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "root",
		"role":     domain.RoleAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "root",
		"role":     domain.RoleAdmin,
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "root",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	for name, tok := range map[string]string{
		"empty":     "",
		"garbage":   "not-a-token",
		"forged":    forged,
		"alg none":  none,
		"no expiry": noExp,
		"no role":   noRole,
	} {
		if _, err := svc.Verify(tok); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("%s: expected ErrUnauthenticated, got %v", name, err)
		}
	}
}
