package model

import (
	"time"

	"github.com/google/uuid"
)

// Bank is a financial institution owning zero or more accounts.
type Bank struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Codigo    *string   `gorm:"type:varchar(20)"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Cuentas []CuentaBancaria `gorm:"foreignKey:BankID"`
}

func (Bank) TableName() string { return "banks" }

// CuentaBancaria carries no numeric balance anywhere in this system: a
// transferencia movement only touches UpdatedAt. Known gap, kept on purpose.
type CuentaBancaria struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BankID             uuid.UUID `gorm:"type:uuid;not null;index"`
	NumeroCuenta       string    `gorm:"column:numero_cuenta;not null"`
	TipoCuenta         *string   `gorm:"column:tipo_cuenta;type:varchar(30)"`
	Moneda             string    `gorm:"type:varchar(5);not null;default:'DOP'"`
	NombreOficialCuenta string   `gorm:"column:nombre_oficial_cuenta"`
	Activo             bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (CuentaBancaria) TableName() string { return "cuentas_bancarias" }
