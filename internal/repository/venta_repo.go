package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type VentaRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.Venta) error
	List(ctx context.Context) ([]model.Venta, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).Count(&n).Error
	return n, err
}

func (r *ventaRepo) CreateBatch(ctx context.Context, items []model.Venta) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var list []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Lote").
		Preload("EstadoVenta").
		Preload("Moneda").
		Order("fecha desc").
		Find(&list).Error
	return list, err
}
