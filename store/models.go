package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel contains common fields for all database models.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// BeforeCreate generates a UUID if not already set.
func (b *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// User is the durable profile row: role and display data, never the
// password hash.
type User struct {
	BaseModel
	Email    string `gorm:"uniqueIndex;not null"`
	FullName string
	Role     string `gorm:"not null;default:customer"`
}

// Credential is the auth-credential row holding the password hash,
// related one-to-one with a User.
type Credential struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
}

// PublicProfile is the caller-facing projection of a User. It is what
// register/login/profile responses carry.
type PublicProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Public returns the caller-facing projection of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:       u.ID.String(),
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

// Models lists every model subject to auto-migration.
func Models() []any {
	return []any{&User{}, &Credential{}}
}
