package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a customer profile. Estado is free text in the DB; "activo"
// (case-insensitive) is the value the listings filter on.
type Cliente struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CodigoCliente    *string   `gorm:"column:codigo_cliente"`
	Nombre           string    `gorm:"not null"`
	Apellidos        string
	Telefono         *string
	Email            *string
	Direccion        *string
	Sexo             *string `gorm:"type:varchar(10)"`
	FechaSuscripcion *time.Time
	// FotoURL is either a local /uploads/ path or an external blob URL.
	FotoURL   *string `gorm:"column:foto_url"`
	Estado    string  `gorm:"not null;default:'activo'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Suscripciones []Suscripcion    `gorm:"foreignKey:ClienteID"`
	Facturas      []FacturaCliente `gorm:"foreignKey:ClienteID"`
}

// Suscripcion links a client to a recurring service.
// Estado: "activo" | "suspendido" | "cancelado"
type Suscripcion struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Estado      string    `gorm:"type:varchar(20);not null;default:'activo'"`
	FechaInicio *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName keeps GORM from pluralizing to "suscripcions".
func (Suscripcion) TableName() string { return "suscripciones" }
