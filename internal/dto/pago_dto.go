package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarPagoRequest struct {
	FacturaID string `json:"factura_id" validate:"required,uuid"`
	ClienteID string `json:"cliente_id" validate:"required,uuid"`
	// Monto is a pointer so presence is what gets validated: a zero amount is
	// a legal payment and still moves the invoice to parcial.
	Monto            *decimal.Decimal `json:"monto"              validate:"required"`
	MetodoPago       string           `json:"metodo_pago"        validate:"required,oneof=efectivo transferencia papeleria"`
	CajaID           *string         `json:"caja_id"            validate:"omitempty,uuid"`
	CuentaBancariaID *string         `json:"cuenta_bancaria_id" validate:"omitempty,uuid"`
	NumeroReferencia *string         `json:"numero_referencia"`
	Observaciones    *string         `json:"observaciones"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegistrarPagoResponse struct {
	Success     bool   `json:"success"`
	PaymentID   string `json:"payment_id"`
	NuevoEstado string `json:"nuevo_estado"`
}

type PagoReciente struct {
	Monto      decimal.Decimal `json:"monto"`
	MetodoPago string          `json:"metodo_pago"`
	CreatedAt  string          `json:"created_at"`
	Nombre     string          `json:"nombre"`
	Apellidos  string          `json:"apellidos"`
}
