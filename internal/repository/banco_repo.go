package repository

import (
	"context"

	"github.com/Dadminete/dbsismovil/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CuentaConBancoRow is the account projection used by the daily summary.
type CuentaConBancoRow struct {
	ID                  uuid.UUID
	BankID              uuid.UUID
	NumeroCuenta        string
	NombreOficialCuenta string
	BancoNombre         string
}

type BancoRepository interface {
	// ListActivosConCuentas returns active banks, each preloaded with its
	// active accounts.
	ListActivosConCuentas(ctx context.Context) ([]model.Bank, error)
	ListCuentasActivas(ctx context.Context) ([]model.CuentaBancaria, error)
	ListCuentasActivasConBanco(ctx context.Context) ([]CuentaConBancoRow, error)
	// TouchCuentaTx refreshes updated_at on a transferencia movement. Bank
	// accounts track no numeric balance — this is the whole effect.
	TouchCuentaTx(tx *gorm.DB, id uuid.UUID) error
}

type bancoRepo struct{ db *gorm.DB }

func NewBancoRepository(db *gorm.DB) BancoRepository { return &bancoRepo{db: db} }

func (r *bancoRepo) ListActivosConCuentas(ctx context.Context) ([]model.Bank, error) {
	var banks []model.Bank
	err := r.db.WithContext(ctx).
		Preload("Cuentas", "activo = true").
		Where("activo = true").
		Order("nombre ASC").
		Find(&banks).Error
	return banks, err
}

func (r *bancoRepo) ListCuentasActivas(ctx context.Context) ([]model.CuentaBancaria, error) {
	var cuentas []model.CuentaBancaria
	err := r.db.WithContext(ctx).Where("activo = true").Find(&cuentas).Error
	return cuentas, err
}

func (r *bancoRepo) ListCuentasActivasConBanco(ctx context.Context) ([]CuentaConBancoRow, error) {
	var rows []CuentaConBancoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT cb.id, cb.bank_id, cb.numero_cuenta, cb.nombre_oficial_cuenta, b.nombre AS banco_nombre
		FROM cuentas_bancarias cb
		JOIN banks b ON cb.bank_id = b.id
		WHERE cb.activo = true`).Scan(&rows).Error
	return rows, err
}

func (r *bancoRepo) TouchCuentaTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Exec("UPDATE cuentas_bancarias SET updated_at = NOW() WHERE id = ?", id).Error
}
