package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarMovimientoRequest struct {
	Tipo             string          `json:"tipo"               validate:"required,oneof=ingreso gasto"`
	Monto            decimal.Decimal `json:"monto"              validate:"required,gt=0"`
	CategoriaID      *string         `json:"categoria_id"       validate:"omitempty,uuid"`
	Metodo           string          `json:"metodo"             validate:"required,oneof=efectivo transferencia papeleria"`
	CajaID           *string         `json:"caja_id"            validate:"omitempty,uuid"`
	BankID           *string         `json:"bank_id"            validate:"omitempty,uuid"`
	CuentaBancariaID *string         `json:"cuenta_bancaria_id" validate:"omitempty,uuid"`
	Descripcion      string          `json:"descripcion"        validate:"required,min=1"`
	// Fecha in YYYY-MM-DD; defaults to today when omitted.
	Fecha     *string `json:"fecha"      validate:"omitempty,datetime=2006-01-02"`
	UsuarioID *string `json:"usuario_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID               string          `json:"id"`
	Tipo             string          `json:"tipo"`
	Monto            decimal.Decimal `json:"monto"`
	CategoriaID      *string         `json:"categoria_id"`
	Metodo           string          `json:"metodo"`
	CajaID           *string         `json:"caja_id"`
	BankID           *string         `json:"bank_id"`
	CuentaBancariaID *string         `json:"cuenta_bancaria_id"`
	Descripcion      string          `json:"descripcion"`
	Fecha            string          `json:"fecha"`
	CreatedAt        string          `json:"created_at"`
}

type MovimientoReciente struct {
	ID              string          `json:"id"`
	Tipo            string          `json:"tipo"`
	Monto           decimal.Decimal `json:"monto"`
	Metodo          string          `json:"metodo"`
	Descripcion     string          `json:"descripcion"`
	Fecha           string          `json:"fecha"`
	CategoriaNombre *string         `json:"categoria_nombre"`
}

type ResumenDia struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

type DailySummaryResponse struct {
	Today    ResumenDia            `json:"today"`
	Cajas    []CajaResumen         `json:"cajas"`
	Accounts []CuentaResumen       `json:"accounts"`
	Recent   []MovimientoReciente  `json:"recent"`
}

type CajaResumen struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Tipo        *string         `json:"tipo,omitempty"`
	SaldoActual decimal.Decimal `json:"saldo_actual"`
}

type CuentaResumen struct {
	ID                  string  `json:"id"`
	BankID              string  `json:"bank_id,omitempty"`
	NumeroCuenta        string  `json:"numero_cuenta"`
	NombreOficialCuenta string  `json:"nombre_oficial_cuenta"`
	BancoNombre         string  `json:"banco_nombre,omitempty"`
	TipoCuenta          *string `json:"tipo_cuenta,omitempty"`
	Moneda              string  `json:"moneda,omitempty"`
}

type BancoResumen struct {
	ID       string          `json:"id"`
	Nombre   string          `json:"nombre"`
	Codigo   *string         `json:"codigo"`
	Accounts []CuentaResumen `json:"accounts"`
}

type CategoriaResumen struct {
	ID      string  `json:"id"`
	Nombre  string  `json:"nombre"`
	Tipo    *string `json:"tipo,omitempty"`
	Subtipo *string `json:"subtipo,omitempty"`
}

// FormDataResponse feeds the transaction form: every active lookup the modal
// needs in a single round trip.
type FormDataResponse struct {
	Cajas               []CajaResumen      `json:"cajas"`
	Banks               []BancoResumen     `json:"banks"`
	Accounts            []CuentaResumen    `json:"accounts"`
	Categories          []CategoriaResumen `json:"categories"`
	PapeleriaCategories []CategoriaResumen `json:"papeleriaCategories"`
}
