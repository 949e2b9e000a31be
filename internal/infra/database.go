package infra

import (
	"fmt"

	"github.com/Dadminete/dbsismovil/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// for all tables, then applies the idempotent SQL patches AutoMigrate cannot
// express (column backfill on pre-existing deployments, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates/updates the schema. Shared with the e2e test setup so
// containers start from the same DDL the server uses.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Cliente{},
		&model.Suscripcion{},
		&model.FacturaCliente{},
		&model.PagoCliente{},
		&model.PagoCuentaPorPagar{},
		&model.Caja{},
		&model.Bank{},
		&model.CuentaBancaria{},
		&model.CategoriaCuenta{},
		&model.CategoriaPapeleria{},
		&model.MovimientoContable{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate does not cover.
// Every statement is guarded so re-running on a patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// usuarios.token_version arrived after the first deployment; existing
		// rows carry NULL, which the auth layer normalizes to 1.
		`ALTER TABLE usuarios ADD COLUMN IF NOT EXISTS token_version INTEGER DEFAULT 1`,
		// Partial index for the pending-invoice flag on the client listing.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_facturas_pendientes') THEN
		    CREATE INDEX idx_facturas_pendientes
		        ON facturas_clientes (cliente_id)
		        WHERE estado IN ('pendiente', 'parcial');
		  END IF;
		END $$`,
		// Confirmed-payment sums per invoice drive status derivation.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_pagos_confirmados_factura') THEN
		    CREATE INDEX idx_pagos_confirmados_factura
		        ON pagos_clientes (factura_id)
		        WHERE estado = 'confirmado';
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
