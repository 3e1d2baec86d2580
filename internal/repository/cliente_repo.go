package repository

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []model.Cliente) error
	FindByDocumento(ctx context.Context, numeroDocumento string) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Count(&n).Error
	return n, err
}

func (r *clienteRepo) CreateBatch(ctx context.Context, items []model.Cliente) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func (r *clienteRepo) FindByDocumento(ctx context.Context, numeroDocumento string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("numero_documento = ?", numeroDocumento).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var list []model.Cliente
	err := r.db.WithContext(ctx).
		Preload("TipoDocumento").
		Order("apellidos asc, nombres asc").
		Find(&list).Error
	return list, err
}
