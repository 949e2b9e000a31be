package repository

import (
	"context"

	"github.com/Dadminete/dbsismovil/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	// FindPrimerActivo backs the biometric placeholder: whichever active user
	// sorts first gets the session.
	FindPrimerActivo(ctx context.Context) (*model.Usuario, error)
	// IncrementarTokenVersion bumps the per-user counter, defaulting unset
	// versions to 1 first. Every outstanding cookie for the user dies with it.
	IncrementarTokenVersion(ctx context.Context, id uuid.UUID) error
	TokenVersion(ctx context.Context, id uuid.UUID) (int, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *usuarioRepo) FindPrimerActivo(ctx context.Context) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("activo = true").Order("created_at ASC").First(&u).Error
	return &u, err
}

func (r *usuarioRepo) IncrementarTokenVersion(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"UPDATE usuarios SET token_version = COALESCE(token_version, 1) + 1, updated_at = NOW() WHERE id = ?", id,
	).Error
}

func (r *usuarioRepo) TokenVersion(ctx context.Context, id uuid.UUID) (int, error) {
	var version *int
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", id).
		Pluck("token_version", &version).Error
	if err != nil {
		return 0, err
	}
	if version == nil {
		return 1, nil
	}
	return *version, nil
}
