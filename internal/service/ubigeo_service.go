package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/dto"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNoEncontrado signals that the requested parent record does not exist.
// Handlers map it to 404.
var ErrNoEncontrado = errors.New("registro no encontrado")

// UbigeoService exposes read-only access to the geographic tree.
type UbigeoService interface {
	ListarDepartamentos(ctx context.Context) ([]dto.DepartamentoResponse, error)
	ListarProvincias(ctx context.Context, departamentoID uuid.UUID) ([]dto.ProvinciaResponse, error)
	ListarDistritos(ctx context.Context, provinciaID uuid.UUID) ([]dto.DistritoResponse, error)
}

type ubigeoService struct {
	departamentos repository.DepartamentoRepository
	provincias    repository.ProvinciaRepository
	distritos     repository.DistritoRepository
}

func NewUbigeoService(
	departamentos repository.DepartamentoRepository,
	provincias repository.ProvinciaRepository,
	distritos repository.DistritoRepository,
) UbigeoService {
	return &ubigeoService{departamentos: departamentos, provincias: provincias, distritos: distritos}
}

func (s *ubigeoService) ListarDepartamentos(ctx context.Context) ([]dto.DepartamentoResponse, error) {
	list, err := s.departamentos.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DepartamentoResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, dto.DepartamentoResponse{
			ID:          d.ID,
			Nombre:      d.Nombre,
			Descripcion: d.Descripcion,
			Activo:      d.Activo,
		})
	}
	return resp, nil
}

func (s *ubigeoService) ListarProvincias(ctx context.Context, departamentoID uuid.UUID) ([]dto.ProvinciaResponse, error) {
	if _, err := s.departamentos.FindByID(ctx, departamentoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("buscar departamento: %w", err)
	}
	list, err := s.provincias.ListByDepartamento(ctx, departamentoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProvinciaResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, dto.ProvinciaResponse{
			ID:             p.ID,
			Nombre:         p.Nombre,
			Descripcion:    p.Descripcion,
			DepartamentoID: p.DepartamentoID,
			Activo:         p.Activo,
		})
	}
	return resp, nil
}

func (s *ubigeoService) ListarDistritos(ctx context.Context, provinciaID uuid.UUID) ([]dto.DistritoResponse, error) {
	if _, err := s.provincias.FindByID(ctx, provinciaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("buscar provincia: %w", err)
	}
	list, err := s.distritos.ListByProvincia(ctx, provinciaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DistritoResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, dto.DistritoResponse{
			ID:          d.ID,
			Nombre:      d.Nombre,
			Descripcion: d.Descripcion,
			ProvinciaID: d.ProvinciaID,
			Activo:      d.Activo,
		})
	}
	return resp, nil
}
