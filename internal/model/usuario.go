package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users. Authentication is username + password;
// PasswordHash holds either a bcrypt hash or, for accounts created before
// hashing was introduced, the legacy plaintext value.
type Usuario struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username string    `gorm:"uniqueIndex;not null"`
	Nombre   string    `gorm:"not null"`
	Email    *string
	PasswordHash string `gorm:"not null"`
	Activo       bool   `gorm:"not null;default:true"`
	// TokenVersion invalidates every outstanding session cookie when bumped.
	// Rows predating the column may carry NULL; treat NULL as 1.
	TokenVersion *int `gorm:"default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VersionActual normalizes the nullable column: unset versions count as 1.
func (u *Usuario) VersionActual() int {
	if u.TokenVersion == nil {
		return 1
	}
	return *u.TokenVersion
}
