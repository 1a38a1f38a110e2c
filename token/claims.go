package token

import (
	gojwt "github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated subject embedded in every token: the
// persisted user's id, email, and role. It never carries the password hash.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Claims is the payload signed into access and refresh tokens.
// Subject, IssuedAt, and ExpiresAt live in the embedded RegisteredClaims.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	gojwt.RegisteredClaims
}

// Identity extracts the identity triple from the claims, dropping all
// time-based claims. Used when re-issuing pairs during refresh.
func (c *Claims) Identity() Identity {
	return Identity{
		ID:    c.Subject,
		Email: c.Email,
		Role:  c.Role,
	}
}

// Pair holds a freshly issued access/refresh token pair. Both tokens carry
// the same identity but are signed and verified independently.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
