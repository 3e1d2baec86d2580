package service

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/dto"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/repository"
)

// InventarioService exposes read-only listings of lotes, clientes y ventas.
// Mutations (reservar, vender, confirmar) belong to a separate write path
// and are not part of this service.
type InventarioService interface {
	ListarLotes(ctx context.Context) ([]dto.LoteResponse, error)
	ListarClientes(ctx context.Context) ([]dto.ClienteResponse, error)
	ListarVentas(ctx context.Context) ([]dto.VentaResponse, error)
}

type inventarioService struct {
	lotes    repository.LoteRepository
	clientes repository.ClienteRepository
	ventas   repository.VentaRepository
}

func NewInventarioService(
	lotes repository.LoteRepository,
	clientes repository.ClienteRepository,
	ventas repository.VentaRepository,
) InventarioService {
	return &inventarioService{lotes: lotes, clientes: clientes, ventas: ventas}
}

func (s *inventarioService) ListarLotes(ctx context.Context) ([]dto.LoteResponse, error) {
	list, err := s.lotes.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LoteResponse, 0, len(list))
	for _, l := range list {
		r := dto.LoteResponse{
			ID:          l.ID,
			Nombre:      l.Nombre,
			Descripcion: l.Descripcion,
			Precio:      l.Precio,
			Area:        l.Area,
			Direccion:   l.Direccion,
			Activo:      l.Activo,
		}
		if l.TipoLote != nil {
			r.Tipo = l.TipoLote.Nombre
		}
		if l.EstadoLote != nil {
			r.Estado = l.EstadoLote.Nombre
		}
		if l.Distrito != nil {
			r.Distrito = l.Distrito.Nombre
		}
		resp = append(resp, r)
	}
	return resp, nil
}

func (s *inventarioService) ListarClientes(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := s.clientes.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		r := dto.ClienteResponse{
			ID:              c.ID,
			Nombres:         c.Nombres,
			Apellidos:       c.Apellidos,
			NumeroDocumento: c.NumeroDocumento,
			Telefono:        c.Telefono,
			Email:           c.Email,
			Direccion:       c.Direccion,
			Visitas:         c.Visitas,
			Activo:          c.Activo,
		}
		if c.TipoDocumento != nil {
			r.TipoDocumento = c.TipoDocumento.Nombre
		}
		resp = append(resp, r)
	}
	return resp, nil
}

func (s *inventarioService) ListarVentas(ctx context.Context) ([]dto.VentaResponse, error) {
	list, err := s.ventas.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		r := dto.VentaResponse{
			ID:     v.ID,
			Fecha:  v.Fecha,
			Monto:  v.Monto,
			Activo: v.Activo,
		}
		if v.Cliente != nil {
			r.Cliente = v.Cliente.Apellidos + ", " + v.Cliente.Nombres
		}
		if v.Lote != nil {
			r.Lote = v.Lote.Nombre
		}
		if v.EstadoVenta != nil {
			r.Estado = v.EstadoVenta.Nombre
		}
		if v.Moneda != nil {
			r.Moneda = v.Moneda.Codigo
		}
		resp = append(resp, r)
	}
	return resp, nil
}
