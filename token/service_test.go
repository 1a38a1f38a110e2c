package token

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/skillsenselab/authkit/errors"
)

const testSecret = "test-secret-for-token-service"

func testService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(&Config{Secret: testSecret})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func testIdentity() Identity {
	return Identity{ID: "a6ef13a0-9a8c-4a7e-9e36-6f0c0b4f8e21", Email: "a@x.com", Role: "customer"}
}

func TestNewService_RequiresSecret(t *testing.T) {
	if _, err := NewService(&Config{}); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestGeneratePair_RoundTrip(t *testing.T) {
	svc := testService(t)
	id := testIdentity()

	pair, err := svc.GeneratePair(id)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Error("access and refresh tokens must be independent")
	}

	claims, err := svc.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.Subject != id.ID || claims.Email != id.Email || claims.Role != id.Role {
		t.Errorf("claims mismatch: got %+v", claims)
	}

	if _, err := svc.VerifyRefresh(pair.RefreshToken); err != nil {
		t.Fatalf("VerifyRefresh: %v", err)
	}
}

func TestGeneratePair_Expirations(t *testing.T) {
	svc := testService(t)
	now := time.Now()

	pair, err := svc.GeneratePair(testIdentity())
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	access, err := svc.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	refresh, err := svc.VerifyRefresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("VerifyRefresh: %v", err)
	}

	const tolerance = 10 * time.Second
	wantAccess := now.Add(15 * time.Minute)
	if d := access.ExpiresAt.Time.Sub(wantAccess); d < -tolerance || d > tolerance {
		t.Errorf("access expiry off by %v", d)
	}
	wantRefresh := now.Add(7 * 24 * time.Hour)
	if d := refresh.ExpiresAt.Time.Sub(wantRefresh); d < -tolerance || d > tolerance {
		t.Errorf("refresh expiry off by %v", d)
	}
	if access.IssuedAt == nil || refresh.IssuedAt == nil {
		t.Error("expected issued-at stamps on both tokens")
	}
}

func TestVerifyAccess_RejectsBadTokens(t *testing.T) {
	svc := testService(t)

	// Token signed with a different secret.
	other, err := NewService(&Config{Secret: "a-different-secret"})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	foreign, err := other.GeneratePair(testIdentity())
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.jwt"},
		{"garbage", "xxxxx"},
		{"wrong signature", foreign.AccessToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccess(tt.token)
			if err == nil {
				t.Fatal("expected verification to fail")
			}
			if !errors.IsCode(err, errors.ErrCodeInvalidToken) {
				t.Errorf("expected INVALID_TOKEN, got %v", err)
			}
		})
	}
}

func TestVerifyAccess_ExpiredToken(t *testing.T) {
	svc := testService(t)

	// Hand-craft a token with exp in the past using the same secret.
	claims := Claims{
		Email: "a@x.com",
		Role:  "customer",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-30 * time.Minute)),
		},
	}
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = svc.VerifyAccess(expired)
	if err == nil {
		t.Fatal("expected expired token to be rejected")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	// Expired and tampered tokens must be indistinguishable to callers.
	_, tamperedErr := svc.VerifyAccess("not.a.jwt")
	tampered, ok := errors.AsAppError(tamperedErr)
	if !ok {
		t.Fatalf("expected AppError, got %T", tamperedErr)
	}
	if appErr.Code != tampered.Code || appErr.Message != tampered.Message {
		t.Error("expired and tampered tokens must produce the same error shape")
	}
}

func TestVerify_ErrorKinds(t *testing.T) {
	svc := testService(t)

	_, err := svc.VerifyAccess("bad")
	if appErr, _ := errors.AsAppError(err); appErr.Details["kind"] != KindAccess {
		t.Errorf("expected access kind, got %v", appErr.Details["kind"])
	}
	_, err = svc.VerifyRefresh("bad")
	if appErr, _ := errors.AsAppError(err); appErr.Details["kind"] != KindRefresh {
		t.Errorf("expected refresh kind, got %v", appErr.Details["kind"])
	}
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	svc := testService(t)
	id := testIdentity()

	pair, err := svc.GeneratePair(id)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	rotated, err := svc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rotated.AccessToken == pair.AccessToken {
		t.Error("expected a different access token after rotation")
	}

	claims, err := svc.VerifyAccess(rotated.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.Subject != id.ID || claims.Email != id.Email || claims.Role != id.Role {
		t.Errorf("identity not preserved through rotation: %+v", claims)
	}

	// No revocation list: the old refresh token still works.
	if _, err := svc.Refresh(pair.RefreshToken); err != nil {
		t.Errorf("expected used refresh token to remain valid, got %v", err)
	}
}

func TestRefresh_InvalidToken(t *testing.T) {
	svc := testService(t)
	_, err := svc.Refresh("bogus")
	if !errors.IsCode(err, errors.ErrCodeInvalidToken) {
		t.Errorf("expected INVALID_TOKEN, got %v", err)
	}
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"empty header", "", "", false},
		{"wrong scheme", "Basic abc", "", false},
		{"no token segment", "Bearer", "", false},
		{"trailing space only", "Bearer ", "", false},
		{"extra segments", "Bearer a b", "", false},
		{"lowercase scheme", "bearer abc", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBearer(tt.header)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ExtractBearer(%q) = (%q, %v), want (%q, %v)", tt.header, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestClaims_Identity_DropsTimeClaims(t *testing.T) {
	c := &Claims{
		Email: "a@x.com",
		Role:  "admin",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  gojwt.NewNumericDate(time.Now()),
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	id := c.Identity()
	if id.ID != "user-1" || id.Email != "a@x.com" || id.Role != "admin" {
		t.Errorf("unexpected identity: %+v", id)
	}
}
