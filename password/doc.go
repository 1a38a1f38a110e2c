// Package password provides password hashing, comparison, and strength
// validation.
//
// It defines a Hasher interface with two implementations:
//   - BcryptHasher: bcrypt with a default cost of 12
//   - Argon2Hasher: argon2id with OWASP-recommended parameters
//
// Both embed salt and work factor in the encoded hash, so comparison
// needs nothing beyond the hash string itself.
//
// The StrengthChecker evaluates a fixed rule set (length, lowercase,
// uppercase, digit, special character) and reports every violated rule
// rather than stopping at the first.
//
// Usage:
//
//	hasher := password.NewBcryptHasher()
//	hash, err := hasher.Hash("my-password")
//	ok, err := hasher.Compare("my-password", hash)
//
//	result := password.NewStrengthChecker().Check("weak")
//	if !result.Valid { ... result.Errors ... }
package password
