package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type EstadoLoteRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.EstadoLote) error
	FindByNombre(ctx context.Context, nombre string) (*model.EstadoLote, error)
	List(ctx context.Context) ([]model.EstadoLote, error)
	DeleteAll(ctx context.Context) error
}

type estadoLoteRepo struct{ db *gorm.DB }

func NewEstadoLoteRepository(db *gorm.DB) EstadoLoteRepository { return &estadoLoteRepo{db: db} }

func (r *estadoLoteRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.EstadoLote{}).Count(&n).Error
	return n, err
}

func (r *estadoLoteRepo) CreateBatch(ctx context.Context, items []model.EstadoLote) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *estadoLoteRepo) FindByNombre(ctx context.Context, nombre string) (*model.EstadoLote, error) {
	var e model.EstadoLote
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *estadoLoteRepo) List(ctx context.Context) ([]model.EstadoLote, error) {
	var list []model.EstadoLote
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *estadoLoteRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.EstadoLote{}).Error
}
