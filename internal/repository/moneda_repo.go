package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type MonedaRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.Moneda) error
	FindByCodigo(ctx context.Context, codigo string) (*model.Moneda, error)
	List(ctx context.Context) ([]model.Moneda, error)
	DeleteAll(ctx context.Context) error
}

type monedaRepo struct{ db *gorm.DB }

func NewMonedaRepository(db *gorm.DB) MonedaRepository { return &monedaRepo{db: db} }

func (r *monedaRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Moneda{}).Count(&n).Error
	return n, err
}

func (r *monedaRepo) CreateBatch(ctx context.Context, items []model.Moneda) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *monedaRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Moneda, error) {
	var m model.Moneda
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *monedaRepo) List(ctx context.Context) ([]model.Moneda, error) {
	var list []model.Moneda
	err := r.db.WithContext(ctx).Order("codigo asc").Find(&list).Error
	return list, err
}

// DeleteAll removes every row. Deleting from an empty table is not an error.
func (r *monedaRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Moneda{}).Error
}
