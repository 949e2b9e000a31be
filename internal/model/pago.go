package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PagoCliente is a payment applied against an invoice. Payments are
// create-only and always inserted with Estado "confirmado"; only confirmed
// payments count toward invoice payoff.
type PagoCliente struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FacturaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClienteID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	NumeroPago       string          `gorm:"column:numero_pago;not null"`
	FechaPago        time.Time       `gorm:"column:fecha_pago"`
	Monto            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago       string          `gorm:"type:varchar(20);not null"`
	CajaID           *uuid.UUID      `gorm:"type:uuid"`
	CuentaBancariaID *uuid.UUID      `gorm:"type:uuid;column:cuenta_bancaria_id"`
	NumeroReferencia string          `gorm:"column:numero_referencia"`
	Estado           string          `gorm:"type:varchar(20);not null;default:'confirmado'"`
	Observaciones    string
	Moneda           string          `gorm:"type:varchar(5);not null;default:'DOP'"`
	Descuento        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PagoCliente) TableName() string { return "pagos_clientes" }

// PagoCuentaPorPagar records an outgoing payment to a supplier account.
// Only aggregated (monthly expense totals) by this backend.
type PagoCuentaPorPagar struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Concepto   string
	Monto      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago string          `gorm:"type:varchar(20)"`
	FechaPago  time.Time       `gorm:"column:fecha_pago"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (PagoCuentaPorPagar) TableName() string { return "pagos_cuentas_por_pagar" }
