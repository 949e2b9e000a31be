package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ActualizarClienteRequest struct {
	Nombre           string  `json:"nombre"            validate:"required,min=1"`
	Apellidos        string  `json:"apellidos"`
	Telefono         *string `json:"telefono"`
	Email            *string `json:"email"             validate:"omitempty,email"`
	Direccion        *string `json:"direccion"`
	FechaSuscripcion *string `json:"fecha_suscripcion" validate:"omitempty,datetime=2006-01-02"`
	Sexo             *string `json:"sexo"`
	// FotoURL accepts an existing URL or a data:image base64 payload; the
	// latter is decoded and stored before the profile row is written.
	FotoURL *string `json:"foto_url"`
	Estado  string  `json:"estado"`
}

type ActualizarFacturaRequest struct {
	Estado        string          `json:"estado"        validate:"required,oneof=pendiente parcial pagada"`
	Total         decimal.Decimal `json:"total"         validate:"required"`
	Observaciones *string         `json:"observaciones"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteListItem struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	Apellidos     string  `json:"apellidos"`
	Telefono      *string `json:"telefono"`
	Email         *string `json:"email"`
	CodigoCliente *string `json:"codigo_cliente"`
	HasPending    bool    `json:"has_pending"`
}

type ClienteDetalle struct {
	ID               string  `json:"id"`
	CodigoCliente    *string `json:"codigo_cliente"`
	Nombre           string  `json:"nombre"`
	Apellidos        string  `json:"apellidos"`
	Telefono         *string `json:"telefono"`
	Email            *string `json:"email"`
	Direccion        *string `json:"direccion"`
	Sexo             *string `json:"sexo"`
	FechaSuscripcion *string `json:"fecha_suscripcion"`
	FotoURL          *string `json:"foto_url"`
	Estado           string  `json:"estado"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type FacturaResponse struct {
	ID            string          `json:"id"`
	ClienteID     string          `json:"cliente_id"`
	NumeroFactura *string         `json:"numero_factura"`
	Total         decimal.Decimal `json:"total"`
	Estado        string          `json:"estado"`
	FechaFactura  string          `json:"fecha_factura"`
	Observaciones *string         `json:"observaciones"`
}
