package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Count(ctx context.Context) (int64, error)
	// CreateBatch persists usuarios together with their Roles association
	// (usuario_roles join rows) in one transaction.
	CreateBatch(ctx context.Context, items []model.Usuario) error
	List(ctx context.Context) ([]model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).Count(&n).Error
	return n, err
}

func (r *usuarioRepo) CreateBatch(ctx context.Context, items []model.Usuario) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Roles are already-persisted catalog rows; only join rows should be
		// created here, never duplicate roles.
		return tx.Omit("Roles.*").Create(&items).Error
	})
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Preload("Roles").Order("username asc").Find(&users).Error
	return users, err
}
