// Package token issues, verifies, and rotates signed JWT pairs.
//
// Every pair consists of a short-lived access token (default 15m) and a
// longer-lived refresh token (default 7d), both HS256-signed compact JWS
// carrying the same identity claims. Verification collapses all failure
// modes — malformed structure, bad signature, expired exp — into a single
// InvalidToken error per token kind, so responses never act as an oracle
// for why a token was rejected.
//
// Rotation has no server-side revocation list: a refresh token that has
// been used to mint a new pair stays valid until its own expiry. Callers
// that need hard revocation must layer it on top.
package token
