// Package store persists user profiles and credentials through GORM.
//
// Registration writes two related rows: a User (role and display data)
// and a Credential (the password hash). The Store interface exposes only
// key lookups — find by email, find by id, create, update — so the rest
// of the service never touches SQL. Postgres backs production; the
// pure-Go sqlite driver backs tests.
//
// Duplicate-email races between concurrent registrations are resolved by
// the email unique index: the losing insert surfaces as ErrDuplicate.
package store
