package repository

import (
	"context"

	"github.com/Dadminete/dbsismovil/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FacturasPendientesRow aggregates outstanding invoices for the dashboard.
type FacturasPendientesRow struct {
	Count int64
	Total decimal.Decimal
}

type FacturaRepository interface {
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.FacturaCliente, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FacturaCliente, error)
	// FindByIDForUpdateTx locks the invoice row for the duration of the
	// transaction so concurrent payment postings serialize on it.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.FacturaCliente, error)
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	Update(ctx context.Context, f *model.FacturaCliente) error
	ResumenPendientes(ctx context.Context) (*FacturasPendientesRow, error)
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.FacturaCliente, error) {
	var facturas []model.FacturaCliente
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("fecha_factura DESC").
		Find(&facturas).Error
	return facturas, err
}

func (r *facturaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FacturaCliente, error) {
	var f model.FacturaCliente
	err := r.db.WithContext(ctx).First(&f, id).Error
	return &f, err
}

func (r *facturaRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.FacturaCliente, error) {
	var f model.FacturaCliente
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&f, id).Error
	return &f, err
}

func (r *facturaRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.FacturaCliente{}).
		Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *facturaRepo) Update(ctx context.Context, f *model.FacturaCliente) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *facturaRepo) ResumenPendientes(ctx context.Context) (*FacturasPendientesRow, error) {
	var row FacturasPendientesRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS count, COALESCE(SUM(total), 0) AS total
		FROM facturas_clientes
		WHERE estado IN ('pendiente', 'parcial')`).Scan(&row).Error
	return &row, err
}
