package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProvinciaRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.Provincia) error
	FindByNombre(ctx context.Context, nombre string) (*model.Provincia, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Provincia, error)
	List(ctx context.Context) ([]model.Provincia, error)
	ListByDepartamento(ctx context.Context, departamentoID uuid.UUID) ([]model.Provincia, error)
}

type provinciaRepo struct{ db *gorm.DB }

func NewProvinciaRepository(db *gorm.DB) ProvinciaRepository {
	return &provinciaRepo{db: db}
}

func (r *provinciaRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Provincia{}).Count(&n).Error
	return n, err
}

func (r *provinciaRepo) CreateBatch(ctx context.Context, items []model.Provincia) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

// FindByNombre resolves a provincia by its exact (accent-sensitive) name.
// Provincia names are unique nationwide in the seed dataset, unlike distrito
// names one level down.
func (r *provinciaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Provincia, error) {
	var p model.Provincia
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *provinciaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Provincia, error) {
	var p model.Provincia
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *provinciaRepo) List(ctx context.Context) ([]model.Provincia, error) {
	var list []model.Provincia
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *provinciaRepo) ListByDepartamento(ctx context.Context, departamentoID uuid.UUID) ([]model.Provincia, error) {
	var list []model.Provincia
	err := r.db.WithContext(ctx).
		Where("departamento_id = ?", departamentoID).
		Order("nombre asc").
		Find(&list).Error
	return list, err
}
