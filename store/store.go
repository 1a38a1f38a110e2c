package store

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by Store implementations. Callers branch on
// these; everything else is an unexpected storage failure.
var (
	ErrNotFound  = stderrors.New("store: record not found")
	ErrDuplicate = stderrors.New("store: duplicate record")
)

// Store is the user-profile persistence interface the rest of the
// service depends on: four key-lookup operations and nothing else.
type Store interface {
	// Create persists a new profile row together with its credential
	// row. Returns ErrDuplicate when the email is already taken; the
	// database's unique index is the final arbiter under concurrent
	// registrations.
	Create(ctx context.Context, user *User, passwordHash string) (*User, error)

	// FindByEmail returns the profile for the email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the profile for the id, or ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// Update applies the given fields to the profile and returns the
	// updated row. Returns ErrNotFound if no such profile exists.
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*User, error)

	// CredentialByUserID returns the credential row for the user, or
	// ErrNotFound.
	CredentialByUserID(ctx context.Context, userID uuid.UUID) (*Credential, error)
}

// gormStore implements Store on a GORM handle.
type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(db *DB) Store {
	return &gormStore{db: db.GormDB}
}

func (s *gormStore) Create(ctx context.Context, user *User, passwordHash string) (*User, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		cred := Credential{UserID: user.ID, PasswordHash: passwordHash}
		return tx.Create(&cred).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (s *gormStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *gormStore) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *gormStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*User, error) {
	res := s.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *gormStore) CredentialByUserID(ctx context.Context, userID uuid.UUID) (*Credential, error) {
	var cred Credential
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cred).Error; err != nil {
		return nil, translate(err)
	}
	return &cred, nil
}

// translate maps GORM and driver errors onto the package sentinels.
func translate(err error) error {
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case stderrors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case isDuplicateMessage(err):
		return ErrDuplicate
	default:
		return err
	}
}

// isDuplicateMessage catches unique-violation messages from drivers that
// predate GORM's error translation.
func isDuplicateMessage(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
