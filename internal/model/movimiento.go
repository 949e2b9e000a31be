package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovimientoContable is one ledger entry, income or expense. Monto is an
// unsigned magnitude; the sign is derived from Tipo at aggregation time.
// Movements are create-only.
// Tipo: "ingreso" | "gasto"
// Metodo: "efectivo" | "transferencia" | "papeleria"
type MovimientoContable struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo             string          `gorm:"type:varchar(10);not null"`
	Monto            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CategoriaID      *uuid.UUID      `gorm:"type:uuid"`
	Metodo           string          `gorm:"type:varchar(20);not null"`
	CajaID           *uuid.UUID      `gorm:"type:uuid;index"`
	BankID           *uuid.UUID      `gorm:"type:uuid"`
	CuentaBancariaID *uuid.UUID      `gorm:"type:uuid;column:cuenta_bancaria_id"`
	Descripcion      string
	Fecha            time.Time `gorm:"not null;index"`
	UsuarioID        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (MovimientoContable) TableName() string { return "movimientos_contables" }
