package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type TipoLoteRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.TipoLote) error
	FindByNombre(ctx context.Context, nombre string) (*model.TipoLote, error)
	List(ctx context.Context) ([]model.TipoLote, error)
	DeleteAll(ctx context.Context) error
}

type tipoLoteRepo struct{ db *gorm.DB }

func NewTipoLoteRepository(db *gorm.DB) TipoLoteRepository { return &tipoLoteRepo{db: db} }

func (r *tipoLoteRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.TipoLote{}).Count(&n).Error
	return n, err
}

func (r *tipoLoteRepo) CreateBatch(ctx context.Context, items []model.TipoLote) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *tipoLoteRepo) FindByNombre(ctx context.Context, nombre string) (*model.TipoLote, error) {
	var t model.TipoLote
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tipoLoteRepo) List(ctx context.Context) ([]model.TipoLote, error) {
	var list []model.TipoLote
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *tipoLoteRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.TipoLote{}).Error
}
