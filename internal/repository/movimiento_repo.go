package repository

import (
	"context"
	"time"

	"github.com/Dadminete/dbsismovil/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovimientoRecienteRow is a ledger entry with its category name resolved.
type MovimientoRecienteRow struct {
	ID              uuid.UUID
	Tipo            string
	Monto           decimal.Decimal
	Metodo          string
	Descripcion     string
	Fecha           time.Time
	CategoriaNombre *string
}

type MovimientoRepository interface {
	// DB exposes the underlying handle so services can open transactions.
	DB() *gorm.DB
	CreateTx(tx *gorm.DB, m *model.MovimientoContable) error
	// SumDelDia totals today's movements of one tipo (ingreso or gasto).
	SumDelDia(ctx context.Context, tipo string) (decimal.Decimal, error)
	ListRecientes(ctx context.Context, limit int) ([]MovimientoRecienteRow, error)
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository { return &movimientoRepo{db: db} }

func (r *movimientoRepo) DB() *gorm.DB { return r.db }

func (r *movimientoRepo) CreateTx(tx *gorm.DB, m *model.MovimientoContable) error {
	return tx.Create(m).Error
}

func (r *movimientoRepo) SumDelDia(ctx context.Context, tipo string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(monto), 0)
		FROM movimientos_contables
		WHERE tipo = ? AND DATE(fecha) = CURRENT_DATE`, tipo).Scan(&total).Error
	return total, err
}

func (r *movimientoRepo) ListRecientes(ctx context.Context, limit int) ([]MovimientoRecienteRow, error) {
	var rows []MovimientoRecienteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.id, m.tipo, m.monto, m.metodo, m.descripcion, m.fecha,
		       c.nombre AS categoria_nombre
		FROM movimientos_contables m
		LEFT JOIN categorias_cuentas c ON m.categoria_id = c.id
		ORDER BY m.fecha DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}
