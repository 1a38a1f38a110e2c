package store

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"

	"github.com/skillsenselab/authkit/logger"
)

func testStore(t *testing.T) Store {
	t.Helper()
	db := testDB(t)
	return NewStore(db)
}

func testDB(t *testing.T) *DB {
	t.Helper()
	cfg := Config{
		Driver:      "sqlite",
		DSN:         ":memory:",
		AutoMigrate: true,
		LogLevel:    "silent",
		MaxRetries:  1,
	}
	db, err := Open(context.Background(), cfg, logger.NewDefault("store-test"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStore_CreateAndFind(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	user := &User{Email: "a@x.com", FullName: "A", Role: "customer"}
	created, err := s.Create(ctx, user, "hash-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}

	byEmail, err := s.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("expected same user, got %v vs %v", byEmail.ID, created.ID)
	}

	byID, err := s.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID.Email != "a@x.com" {
		t.Errorf("unexpected email %q", byID.Email)
	}

	cred, err := s.CredentialByUserID(ctx, created.ID)
	if err != nil {
		t.Fatalf("CredentialByUserID: %v", err)
	}
	if cred.PasswordHash != "hash-1" {
		t.Errorf("unexpected hash %q", cred.PasswordHash)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, &User{Email: "a@x.com", Role: "customer"}, "h1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := s.Create(ctx, &User{Email: "a@x.com", Role: "customer"}, "h2")
	if !stderrors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestStore_Find_NotFound(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.FindByEmail(ctx, "nobody@x.com"); !stderrors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.FindByID(ctx, uuid.New()); !stderrors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.CredentialByUserID(ctx, uuid.New()); !stderrors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Update(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, &User{Email: "a@x.com", FullName: "A", Role: "customer"}, "h")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := s.Update(ctx, created.ID, map[string]any{"full_name": "A. Person"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.FullName != "A. Person" {
		t.Errorf("expected updated name, got %q", updated.FullName)
	}

	if _, err := s.Update(ctx, uuid.New(), map[string]any{"full_name": "X"}); !stderrors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for absent user, got %v", err)
	}
}

func TestUser_Public_OmitsCredential(t *testing.T) {
	u := &User{Email: "a@x.com", FullName: "A", Role: "admin"}
	u.ID = uuid.New()
	p := u.Public()
	if p.ID != u.ID.String() || p.Email != u.Email || p.Role != "admin" {
		t.Errorf("unexpected projection: %+v", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{DSN: "x"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := Config{Driver: "oracle", DSN: "x"}
	bad.ApplyDefaults()
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unsupported driver")
	}

	missing := Config{}
	missing.ApplyDefaults()
	missing.DSN = ""
	if err := missing.Validate(); err == nil {
		t.Error("expected error for empty DSN")
	}
}
