package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type EstadoVentaRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.EstadoVenta) error
	FindByNombre(ctx context.Context, nombre string) (*model.EstadoVenta, error)
	List(ctx context.Context) ([]model.EstadoVenta, error)
	DeleteAll(ctx context.Context) error
}

type estadoVentaRepo struct{ db *gorm.DB }

func NewEstadoVentaRepository(db *gorm.DB) EstadoVentaRepository { return &estadoVentaRepo{db: db} }

func (r *estadoVentaRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.EstadoVenta{}).Count(&n).Error
	return n, err
}

func (r *estadoVentaRepo) CreateBatch(ctx context.Context, items []model.EstadoVenta) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *estadoVentaRepo) FindByNombre(ctx context.Context, nombre string) (*model.EstadoVenta, error) {
	var e model.EstadoVenta
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *estadoVentaRepo) List(ctx context.Context) ([]model.EstadoVenta, error) {
	var list []model.EstadoVenta
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *estadoVentaRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.EstadoVenta{}).Error
}
