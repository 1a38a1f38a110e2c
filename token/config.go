package token

import (
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// SigningMethod defines supported JWT signing algorithms.
type SigningMethod string

const (
	HS256 SigningMethod = "HS256"
	HS384 SigningMethod = "HS384"
	HS512 SigningMethod = "HS512"
)

// Config configures the token service.
type Config struct {
	// Secret is the HMAC signing key. Required: there is no fallback —
	// an empty secret fails validation so the service refuses to start
	// with a guessable key.
	Secret string

	// Method is the signing algorithm (default: HS256).
	Method SigningMethod

	// Issuer is the "iss" claim (optional).
	Issuer string

	// AccessTTL is the lifetime of access tokens (default: 15m).
	AccessTTL time.Duration

	// RefreshTTL is the lifetime of refresh tokens (default: 7d).
	RefreshTTL time.Duration
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Method == "" {
		c.Method = HS256
	}
	if c.AccessTTL == 0 {
		c.AccessTTL = 15 * time.Minute
	}
	if c.RefreshTTL == 0 {
		c.RefreshTTL = 7 * 24 * time.Hour
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	switch c.Method {
	case HS256, HS384, HS512:
	default:
		return errors.New("token: unsupported signing method: " + string(c.Method))
	}
	if c.Secret == "" {
		return errors.New("token: secret is required")
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		return errors.New("token: TTLs must be positive")
	}
	return nil
}

// signingMethod returns the golang-jwt SigningMethod instance.
func (c *Config) signingMethod() gojwt.SigningMethod {
	switch c.Method {
	case HS384:
		return gojwt.SigningMethodHS384
	case HS512:
		return gojwt.SigningMethodHS512
	default:
		return gojwt.SigningMethodHS256
	}
}

// key returns the shared HMAC key used for signing and verification.
func (c *Config) key() []byte {
	return []byte(c.Secret)
}
