package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type TipoDocumentoRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.TipoDocumento) error
	FindByNombre(ctx context.Context, nombre string) (*model.TipoDocumento, error)
	List(ctx context.Context) ([]model.TipoDocumento, error)
	DeleteAll(ctx context.Context) error
}

type tipoDocumentoRepo struct{ db *gorm.DB }

func NewTipoDocumentoRepository(db *gorm.DB) TipoDocumentoRepository {
	return &tipoDocumentoRepo{db: db}
}

func (r *tipoDocumentoRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.TipoDocumento{}).Count(&n).Error
	return n, err
}

func (r *tipoDocumentoRepo) CreateBatch(ctx context.Context, items []model.TipoDocumento) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *tipoDocumentoRepo) FindByNombre(ctx context.Context, nombre string) (*model.TipoDocumento, error) {
	var t model.TipoDocumento
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tipoDocumentoRepo) List(ctx context.Context) ([]model.TipoDocumento, error) {
	var list []model.TipoDocumento
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *tipoDocumentoRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.TipoDocumento{}).Error
}
