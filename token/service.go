package token

import (
	"fmt"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/skillsenselab/authkit/errors"
)

// Token kinds, used to label verification errors.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Service issues and verifies signed access/refresh token pairs.
type Service struct {
	cfg Config
}

// NewService creates a token service. The config must carry a non-empty
// secret; there is no built-in fallback key.
func NewService(cfg *Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	return &Service{cfg: *cfg}, nil
}

// AccessTTL returns the configured access-token lifetime.
func (s *Service) AccessTTL() time.Duration { return s.cfg.AccessTTL }

// RefreshTTL returns the configured refresh-token lifetime.
func (s *Service) RefreshTTL() time.Duration { return s.cfg.RefreshTTL }

// GeneratePair builds two independently signed tokens for the identity,
// each stamped with issued-at and its own expiry.
func (s *Service) GeneratePair(id Identity) (Pair, error) {
	now := time.Now()

	access, err := s.sign(id, now, s.cfg.AccessTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("token: sign access token: %w", err)
	}
	refresh, err := s.sign(id, now, s.cfg.RefreshTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("token: sign refresh token: %w", err)
	}

	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess checks the signature and expiry of an access token and
// returns its claims. Malformed, tampered, and expired tokens all yield
// the same InvalidToken("access") error so callers learn nothing about
// which check failed.
func (s *Service) VerifyAccess(tokenString string) (*Claims, error) {
	return s.verify(tokenString, KindAccess)
}

// VerifyRefresh is VerifyAccess with the "refresh" error label.
func (s *Service) VerifyRefresh(tokenString string) (*Claims, error) {
	return s.verify(tokenString, KindRefresh)
}

// Refresh verifies a refresh token and mints a brand-new pair from the
// identity it carries, dropping the old iat/exp. The old refresh token is
// not revoked: until it expires it can mint further pairs.
func (s *Service) Refresh(refreshToken string) (Pair, error) {
	claims, err := s.VerifyRefresh(refreshToken)
	if err != nil {
		return Pair{}, err
	}
	return s.GeneratePair(claims.Identity())
}

// ExtractBearer pulls the token out of an Authorization header value.
// The header must be exactly two space-separated parts with a literal
// "Bearer" scheme; anything else returns ok=false, never an error.
func ExtractBearer(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func (s *Service) sign(id Identity, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Email: id.Email,
		Role:  id.Role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   id.ID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	return gojwt.NewWithClaims(s.cfg.signingMethod(), claims).SignedString(s.cfg.key())
}

func (s *Service) verify(tokenString, kind string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc, s.parserOptions()...)
	if err != nil || !parsed.Valid {
		return nil, errors.InvalidToken(kind).WithCause(err)
	}
	return claims, nil
}

// keyFunc is the jwt.Keyfunc used during token parsing.
func (s *Service) keyFunc(t *gojwt.Token) (interface{}, error) {
	expected := s.cfg.signingMethod()
	if t.Method.Alg() != expected.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", t.Method.Alg())
	}
	return s.cfg.key(), nil
}

// parserOptions returns jwt.ParserOption based on config.
func (s *Service) parserOptions() []gojwt.ParserOption {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{s.cfg.signingMethod().Alg()}),
		gojwt.WithExpirationRequired(),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.cfg.Issuer))
	}
	return opts
}
