package repository

import (
	"context"

	"github.com/Dadminete/dbsismovil/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteListadoRow is the listing projection: profile columns plus a flag
// for outstanding (pendiente/parcial) invoices.
type ClienteListadoRow struct {
	ID            uuid.UUID
	Nombre        string
	Apellidos     string
	Telefono      *string
	Email         *string
	CodigoCliente *string
	HasPending    bool
}

type ClienteRepository interface {
	// ListActivos returns active clients holding an active subscription.
	ListActivos(ctx context.Context) ([]ClienteListadoRow, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	// CountActivosConSuscripcion counts distinct clients that are both active
	// and hold at least one active subscription (dashboard stat).
	CountActivosConSuscripcion(ctx context.Context) (int64, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) ListActivos(ctx context.Context) ([]ClienteListadoRow, error) {
	var rows []ClienteListadoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id, c.nombre, c.apellidos, c.telefono, c.email, c.codigo_cliente,
		       EXISTS (
		           SELECT 1 FROM facturas_clientes f
		           WHERE f.cliente_id = c.id AND f.estado IN ('pendiente', 'parcial')
		       ) AS has_pending
		FROM clientes c
		WHERE LOWER(c.estado) = 'activo'
		  AND EXISTS (SELECT 1 FROM suscripciones s WHERE s.cliente_id = c.id AND s.estado = 'activo')
		ORDER BY c.nombre ASC`).Scan(&rows).Error
	return rows, err
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) CountActivosConSuscripcion(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT s.cliente_id)
		FROM suscripciones s
		JOIN clientes c ON s.cliente_id = c.id
		WHERE s.estado = 'activo' AND LOWER(c.estado) = 'activo'`).Scan(&count).Error
	return count, err
}
