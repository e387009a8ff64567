package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/merseybathrooms/jobtracker/internal/models"
)

func testUser() *models.User {
	return &models.User{ID: "u-1", Email: "worker@test.com", Role: models.RoleWorker}
}

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer("testsecret", 7*24*time.Hour)

	tok, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := iss.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u-1" || claims.Email != "worker@test.com" || claims.Role != models.RoleWorker {
		t.Fatalf("unexpected claims %+v", claims)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 7*24*time.Hour {
		t.Fatalf("expected 7 day expiry, got %s", ttl)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	iss := NewIssuer("testsecret", time.Hour)
	issuedAt := time.Now().Add(-2 * time.Hour)
	iss.now = func() time.Time { return issuedAt }

	tok, err := iss.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	iss.now = time.Now
	if _, err := iss.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := NewIssuer("one", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewIssuer("two", time.Hour).Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected signature mismatch to be rejected, got %v", err)
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		UserID: "u-1",
		Role:   models.RoleBoss,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("testsecret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewIssuer("testsecret", time.Hour).Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected HS512 token to be rejected, got %v", err)
	}
}

func TestVerifyRejectsMissingExpiryAndUnknownRole(t *testing.T) {
	iss := NewIssuer("testsecret", time.Hour)

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "u-1", Role: models.RoleBoss}).
		SignedString([]byte("testsecret"))
	if _, err := iss.Verify(noExp); err == nil {
		t.Fatalf("token without exp must be rejected")
	}

	badRole, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "u-1",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("testsecret"))
	if _, err := iss.Verify(badRole); err == nil {
		t.Fatalf("token with unknown role must be rejected")
	}
}
