package repository

import (
	"context"
	"time"

	"github.com/Dadminete/dbsismovil/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PagoRecienteRow joins the latest payments with client names.
type PagoRecienteRow struct {
	Monto      decimal.Decimal
	MetodoPago string
	CreatedAt  time.Time
	Nombre     string
	Apellidos  string
}

type PagoRepository interface {
	// DB exposes the underlying handle so services can open transactions.
	DB() *gorm.DB
	CreateTx(tx *gorm.DB, p *model.PagoCliente) error
	// SumConfirmadosTx totals confirmed payments for an invoice inside the
	// posting transaction (paidBefore).
	SumConfirmadosTx(tx *gorm.DB, facturaID uuid.UUID) (decimal.Decimal, error)
	ListRecientes(ctx context.Context, limit int) ([]PagoRecienteRow, error)
	SumMesActual(ctx context.Context) (decimal.Decimal, error)
	// SumCuentasPorPagarMesActual totals the month's outgoing supplier
	// payments (dashboard "monthly expenses").
	SumCuentasPorPagarMesActual(ctx context.Context) (decimal.Decimal, error)
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) DB() *gorm.DB { return r.db }

func (r *pagoRepo) CreateTx(tx *gorm.DB, p *model.PagoCliente) error {
	return tx.Create(p).Error
}

func (r *pagoRepo) SumConfirmadosTx(tx *gorm.DB, facturaID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := tx.Raw(`
		SELECT COALESCE(SUM(monto), 0)
		FROM pagos_clientes
		WHERE factura_id = ? AND estado = 'confirmado'`, facturaID).Scan(&total).Error
	return total, err
}

func (r *pagoRepo) ListRecientes(ctx context.Context, limit int) ([]PagoRecienteRow, error) {
	var rows []PagoRecienteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.monto, p.metodo_pago, p.created_at, c.nombre, c.apellidos
		FROM pagos_clientes p
		JOIN clientes c ON p.cliente_id = c.id
		ORDER BY p.created_at DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}

func (r *pagoRepo) SumMesActual(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(monto), 0)
		FROM pagos_clientes
		WHERE created_at >= date_trunc('month', current_date)`).Scan(&total).Error
	return total, err
}

func (r *pagoRepo) SumCuentasPorPagarMesActual(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(monto), 0)
		FROM pagos_cuentas_por_pagar
		WHERE created_at >= date_trunc('month', current_date)`).Scan(&total).Error
	return total, err
}
