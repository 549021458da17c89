package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		RegisterSecret: "register-secret",
		AccessSecret:   "access-secret",
		RefreshSecret:  "refresh-secret",
		ResetSecret:    "reset-secret",
		RegisterTTL:    time.Hour,
		AccessTTL:      time.Hour,
		RefreshTTL:     time.Hour,
		ResetTTL:       time.Hour,
		Issuer:         "test",
	}
}

func TestJWTService_IssueVerify(t *testing.T) {
	svc := NewJWTService(testJWTConfig())

	token, err := svc.Issue(domain.PurposeAccess, domain.Claims{
		"email": "asha@example.com",
		"role":  "user",
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Verify(domain.PurposeAccess, token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims["email"] != "asha@example.com" || claims["role"] != "user" {
		t.Errorf("claims did not round-trip: %v", claims)
	}
	if claims["iss"] != "test" {
		t.Errorf("issuer missing: %v", claims["iss"])
	}
}

func TestJWTService_PurposeIsolation(t *testing.T) {
	svc := NewJWTService(testJWTConfig())

	purposes := []domain.TokenPurpose{
		domain.PurposeRegister,
		domain.PurposeAccess,
		domain.PurposeRefresh,
		domain.PurposeReset,
	}

	for _, issued := range purposes {
		token, err := svc.Issue(issued, domain.Claims{"email": "a@b.com"})
		if err != nil {
			t.Fatalf("issue %s failed: %v", issued, err)
		}
		for _, verified := range purposes {
			_, err := svc.Verify(verified, token)
			if issued == verified {
				if err != nil {
					t.Errorf("%s token rejected by its own purpose: %v", issued, err)
				}
				continue
			}
			if !errors.Is(err, domain.ErrTokenInvalid) {
				t.Errorf("%s token accepted as %s: err=%v", issued, verified, err)
			}
		}
	}
}

func TestJWTService_Expiry(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTTL = -time.Minute // already expired at issue time
	svc := NewJWTService(cfg)

	token, err := svc.Issue(domain.PurposeAccess, domain.Claims{"email": "a@b.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(domain.PurposeAccess, token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_UnsetSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ResetSecret = ""
	svc := NewJWTService(cfg)

	if _, err := svc.Issue(domain.PurposeReset, domain.Claims{}); !errors.Is(err, domain.ErrTokenConfig) {
		t.Errorf("issue: expected ErrTokenConfig, got %v", err)
	}
	if _, err := svc.Verify(domain.PurposeReset, "whatever"); !errors.Is(err, domain.ErrTokenConfig) {
		t.Errorf("verify: expected ErrTokenConfig, got %v", err)
	}
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService(testJWTConfig())

	for _, token := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := svc.Verify(domain.PurposeAccess, token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("token %q: expected ErrTokenInvalid, got %v", token, err)
		}
	}
}
