package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FacturaCliente is a billable document issued to a client.
// Estado: "pendiente" | "parcial" | "pagada" — derived from cumulative
// confirmed payments at posting time and stored on the row.
type FacturaCliente struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	NumeroFactura *string         `gorm:"column:numero_factura"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado        string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	FechaFactura  time.Time       `gorm:"column:fecha_factura"`
	Observaciones *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (FacturaCliente) TableName() string { return "facturas_clientes" }
