package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Caja is a named cash-balance bucket not tied to a bank. SaldoActual is a
// running total adjusted inside the same transaction that records each
// efectivo movement, via an atomic SQL increment — never read-modify-write.
// Intended invariant: saldo_actual = saldo_inicial + Σ ingresos − Σ gastos
// over efectivo movements referencing the box.
type Caja struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string          `gorm:"not null"`
	Tipo         *string         `gorm:"type:varchar(30)"`
	SaldoInicial decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SaldoActual  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Activa       bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
