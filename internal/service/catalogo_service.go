package service

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/dto"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService exposes the flat lookup catalogs.
type CatalogoService interface {
	ListarMonedas(ctx context.Context) ([]dto.MonedaResponse, error)
	ListarTiposDocumento(ctx context.Context) ([]dto.CatalogoItemResponse, error)
	ListarTiposLote(ctx context.Context) ([]dto.CatalogoItemResponse, error)
	ListarEstadosLote(ctx context.Context) ([]dto.CatalogoItemResponse, error)
	ListarEstadosVenta(ctx context.Context) ([]dto.CatalogoItemResponse, error)
	ListarRoles(ctx context.Context) ([]dto.CatalogoItemResponse, error)
}

type catalogoService struct {
	monedas        repository.MonedaRepository
	tiposDocumento repository.TipoDocumentoRepository
	tiposLote      repository.TipoLoteRepository
	estadosLote    repository.EstadoLoteRepository
	estadosVenta   repository.EstadoVentaRepository
	roles          repository.RolRepository
}

func NewCatalogoService(
	monedas repository.MonedaRepository,
	tiposDocumento repository.TipoDocumentoRepository,
	tiposLote repository.TipoLoteRepository,
	estadosLote repository.EstadoLoteRepository,
	estadosVenta repository.EstadoVentaRepository,
	roles repository.RolRepository,
) CatalogoService {
	return &catalogoService{
		monedas:        monedas,
		tiposDocumento: tiposDocumento,
		tiposLote:      tiposLote,
		estadosLote:    estadosLote,
		estadosVenta:   estadosVenta,
		roles:          roles,
	}
}

func (s *catalogoService) ListarMonedas(ctx context.Context) ([]dto.MonedaResponse, error) {
	list, err := s.monedas.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MonedaResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.MonedaResponse{ID: m.ID, Codigo: m.Codigo, Descripcion: m.Descripcion, Activo: m.Activo})
	}
	return resp, nil
}

func (s *catalogoService) ListarTiposDocumento(ctx context.Context) ([]dto.CatalogoItemResponse, error) {
	list, err := s.tiposDocumento.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CatalogoItemResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, itemResponse(t.ID, t.Nombre, t.Descripcion, t.Activo))
	}
	return resp, nil
}

func (s *catalogoService) ListarTiposLote(ctx context.Context) ([]dto.CatalogoItemResponse, error) {
	list, err := s.tiposLote.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CatalogoItemResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, itemResponse(t.ID, t.Nombre, t.Descripcion, t.Activo))
	}
	return resp, nil
}

func (s *catalogoService) ListarEstadosLote(ctx context.Context) ([]dto.CatalogoItemResponse, error) {
	list, err := s.estadosLote.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CatalogoItemResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, itemResponse(e.ID, e.Nombre, e.Descripcion, e.Activo))
	}
	return resp, nil
}

func (s *catalogoService) ListarEstadosVenta(ctx context.Context) ([]dto.CatalogoItemResponse, error) {
	list, err := s.estadosVenta.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CatalogoItemResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, itemResponse(e.ID, e.Nombre, e.Descripcion, e.Activo))
	}
	return resp, nil
}

func (s *catalogoService) ListarRoles(ctx context.Context) ([]dto.CatalogoItemResponse, error) {
	list, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CatalogoItemResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, itemResponse(r.ID, r.Nombre, r.Descripcion, r.Activo))
	}
	return resp, nil
}

func itemResponse(id uuid.UUID, nombre string, descripcion *string, activo bool) dto.CatalogoItemResponse {
	return dto.CatalogoItemResponse{ID: id, Nombre: nombre, Descripcion: descripcion, Activo: activo}
}
