// Package auth is the orchestration layer for account registration,
// login, token refresh, and profile reads. It composes the store,
// password hasher, strength checker, and token service behind a single
// Service and owns the error translation the HTTP layer relies on:
// strength violations become WEAK_PASSWORD, taken emails become
// DUPLICATE_EMAIL, and every credential failure collapses into one
// generic INVALID_CREDENTIALS so responses never reveal whether an
// email is registered.
package auth
