package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type LoteRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.Lote) error
	FindByNombre(ctx context.Context, nombre string) (*model.Lote, error)
	List(ctx context.Context) ([]model.Lote, error)
}

type loteRepo struct{ db *gorm.DB }

func NewLoteRepository(db *gorm.DB) LoteRepository { return &loteRepo{db: db} }

func (r *loteRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Lote{}).Count(&n).Error
	return n, err
}

func (r *loteRepo) CreateBatch(ctx context.Context, items []model.Lote) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *loteRepo) FindByNombre(ctx context.Context, nombre string) (*model.Lote, error) {
	var l model.Lote
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *loteRepo) List(ctx context.Context) ([]model.Lote, error) {
	var list []model.Lote
	err := r.db.WithContext(ctx).
		Preload("TipoLote").
		Preload("EstadoLote").
		Preload("Distrito").
		Order("nombre asc").
		Find(&list).Error
	return list, err
}
