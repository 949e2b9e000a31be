package repository

import (
	"context"

	"github.com/Dadminete/dbsismovil/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CajaRepository interface {
	ListActivas(ctx context.Context) ([]model.Caja, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Caja, error)
	// AjustarSaldoTx applies a signed delta to saldo_actual as a single SQL
	// increment inside the posting transaction — no read-modify-write.
	AjustarSaldoTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) ListActivas(ctx context.Context) ([]model.Caja, error) {
	var cajas []model.Caja
	err := r.db.WithContext(ctx).
		Where("activa = true").
		Order("nombre ASC").
		Find(&cajas).Error
	return cajas, err
}

func (r *cajaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *cajaRepo) AjustarSaldoTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	return tx.Exec(
		"UPDATE cajas SET saldo_actual = saldo_actual + ?, updated_at = NOW() WHERE id = ?",
		delta, id,
	).Error
}
