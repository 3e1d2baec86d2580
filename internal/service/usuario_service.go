package service

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/dto"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/repository"
)

type UsuarioService interface {
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
}

type usuarioService struct {
	usuarios repository.UsuarioRepository
}

func NewUsuarioService(usuarios repository.UsuarioRepository) UsuarioService {
	return &usuarioService{usuarios: usuarios}
}

func (s *usuarioService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		roles := make([]string, 0, len(u.Roles))
		for _, rol := range u.Roles {
			roles = append(roles, rol.Nombre)
		}
		resp = append(resp, dto.UsuarioResponse{
			ID:       u.ID,
			Username: u.Username,
			Nombre:   u.Nombre,
			Email:    u.Email,
			Roles:    roles,
			Activo:   u.Activo,
		})
	}
	return resp, nil
}
