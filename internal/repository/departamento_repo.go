package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartamentoRepository covers the root level of the geographic tree.
type DepartamentoRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.Departamento) error
	FindByNombre(ctx context.Context, nombre string) (*model.Departamento, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Departamento, error)
	List(ctx context.Context) ([]model.Departamento, error)
}

type departamentoRepo struct{ db *gorm.DB }

func NewDepartamentoRepository(db *gorm.DB) DepartamentoRepository {
	return &departamentoRepo{db: db}
}

func (r *departamentoRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Departamento{}).Count(&n).Error
	return n, err
}

// CreateBatch inserts all rows inside one transaction: a stage either lands
// completely or not at all.
func (r *departamentoRepo) CreateBatch(ctx context.Context, items []model.Departamento) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *departamentoRepo) FindByNombre(ctx context.Context, nombre string) (*model.Departamento, error) {
	var d model.Departamento
	// Byte-exact match: seed data carries accented names (Áncash, Junín) and
	// no normalization is applied on either side.
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *departamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Departamento, error) {
	var d model.Departamento
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *departamentoRepo) List(ctx context.Context) ([]model.Departamento, error) {
	var list []model.Departamento
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}
