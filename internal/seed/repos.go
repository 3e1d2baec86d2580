package seed

import (
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/repository"

	"gorm.io/gorm"
)

// NewRepos builds the full repository set from a live DB connection. The
// composition roots (cmd/server, cmd/seed) use this; tests construct Repos
// directly from stubs.
func NewRepos(db *gorm.DB) Repos {
	return Repos{
		EstadosLote:    repository.NewEstadoLoteRepository(db),
		EstadosVenta:   repository.NewEstadoVentaRepository(db),
		Monedas:        repository.NewMonedaRepository(db),
		TiposDocumento: repository.NewTipoDocumentoRepository(db),
		Clientes:       repository.NewClienteRepository(db),
		TiposLote:      repository.NewTipoLoteRepository(db),
		Roles:          repository.NewRolRepository(db),
		Usuarios:       repository.NewUsuarioRepository(db),
		Departamentos:  repository.NewDepartamentoRepository(db),
		Provincias:     repository.NewProvinciaRepository(db),
		Distritos:      repository.NewDistritoRepository(db),
		Lotes:          repository.NewLoteRepository(db),
		Ventas:         repository.NewVentaRepository(db),
	}
}
