package repository

import (
	"context"

	"github.com/Dadminete/dbsismovil/internal/model"

	"gorm.io/gorm"
)

type CategoriaRepository interface {
	ListCuentasActivas(ctx context.Context) ([]model.CategoriaCuenta, error)
	ListPapeleriaActivas(ctx context.Context) ([]model.CategoriaPapeleria, error)
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) ListCuentasActivas(ctx context.Context) ([]model.CategoriaCuenta, error) {
	var cats []model.CategoriaCuenta
	err := r.db.WithContext(ctx).Where("activa = true").Order("nombre ASC").Find(&cats).Error
	return cats, err
}

func (r *categoriaRepo) ListPapeleriaActivas(ctx context.Context) ([]model.CategoriaPapeleria, error) {
	var cats []model.CategoriaPapeleria
	err := r.db.WithContext(ctx).Where("activo = true").Order("nombre ASC").Find(&cats).Error
	return cats, err
}
