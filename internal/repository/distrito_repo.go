package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DistritoRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.Distrito) error
	// FindByProvinciaYNombre is the only well-defined natural-key lookup for
	// distritos: names alone are ambiguous ("San Juan" exists under more than
	// one provincia).
	FindByProvinciaYNombre(ctx context.Context, provinciaID uuid.UUID, nombre string) (*model.Distrito, error)
	List(ctx context.Context) ([]model.Distrito, error)
	ListByProvincia(ctx context.Context, provinciaID uuid.UUID) ([]model.Distrito, error)
}

type distritoRepo struct{ db *gorm.DB }

func NewDistritoRepository(db *gorm.DB) DistritoRepository {
	return &distritoRepo{db: db}
}

func (r *distritoRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Distrito{}).Count(&n).Error
	return n, err
}

func (r *distritoRepo) CreateBatch(ctx context.Context, items []model.Distrito) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *distritoRepo) FindByProvinciaYNombre(ctx context.Context, provinciaID uuid.UUID, nombre string) (*model.Distrito, error) {
	var d model.Distrito
	err := r.db.WithContext(ctx).
		Where("provincia_id = ? AND nombre = ?", provinciaID, nombre).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *distritoRepo) List(ctx context.Context) ([]model.Distrito, error) {
	var list []model.Distrito
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *distritoRepo) ListByProvincia(ctx context.Context, provinciaID uuid.UUID) ([]model.Distrito, error) {
	var list []model.Distrito
	err := r.db.WithContext(ctx).
		Where("provincia_id = ?", provinciaID).
		Order("nombre asc").
		Find(&list).Error
	return list, err
}
