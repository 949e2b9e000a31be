package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoriaCuenta tags ledger movements. Pure lookup, no behavior.
type CategoriaCuenta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Tipo      *string   `gorm:"type:varchar(30)"`
	Subtipo   *string   `gorm:"type:varchar(30)"`
	Activa    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoriaCuenta) TableName() string { return "categorias_cuentas" }

// CategoriaPapeleria tags stationery-method movements.
type CategoriaPapeleria struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoriaPapeleria) TableName() string { return "categorias_papeleria" }
