// Package seed brings an empty store to the fully-populated baseline the
// rest of the backend assumes: lookup catalogs, the departamento → provincia
// → distrito tree, and sample clientes, lotes y ventas.
//
// The engine runs once at process start. Stages execute in a fixed dependency
// order and each stage is individually idempotent: a non-empty target table
// makes the stage a logged no-op, so re-running the whole engine against an
// already-seeded store changes nothing.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Config gates the engine. Both flags default to false: a production process
// that does not opt in performs no reads or writes at all.
type Config struct {
	// Enabled turns the engine on. When false Run returns immediately.
	Enabled bool
	// Reset wipes the independent lookup catalogs before population.
	Reset bool
}

// Repos collects every table the engine writes. The seeder is constructed
// explicitly from these interfaces, with no package-level state, so tests
// can hand it in-memory stubs.
type Repos struct {
	EstadosLote    repository.EstadoLoteRepository
	EstadosVenta   repository.EstadoVentaRepository
	Monedas        repository.MonedaRepository
	TiposDocumento repository.TipoDocumentoRepository
	Clientes       repository.ClienteRepository
	TiposLote      repository.TipoLoteRepository
	Roles          repository.RolRepository
	Usuarios       repository.UsuarioRepository
	Departamentos  repository.DepartamentoRepository
	Provincias     repository.ProvinciaRepository
	Distritos      repository.DistritoRepository
	Lotes          repository.LoteRepository
	Ventas         repository.VentaRepository
}

type Seeder struct {
	cfg   Config
	repos Repos
	log   zerolog.Logger
}

func New(cfg Config, repos Repos, log zerolog.Logger) *Seeder {
	return &Seeder{cfg: cfg, repos: repos, log: log}
}

// etapa is one unit of the run: it populates exactly one table.
type etapa struct {
	tabla string
	fn    func(ctx context.Context) error
}

// Run executes the full bootstrap. Stage order is fixed and load-bearing:
// every parent table is fully populated before any child stage resolves
// references into it. The first failing stage aborts the run; nothing is
// caught or retried.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.log.Info().Msg("seed deshabilitado, no se realiza ninguna operación")
		return nil
	}

	if s.cfg.Reset {
		if err := s.Reset(ctx); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}

	etapas := []etapa{
		{"estados_lote", s.seedEstadosLote},
		{"estados_venta", s.seedEstadosVenta},
		{"monedas", s.seedMonedas},
		{"tipos_documento", s.seedTiposDocumento},
		{"clientes", s.seedClientes},
		{"tipos_lote", s.seedTiposLote},
		{"roles", s.seedRoles},
		{"usuarios", s.seedUsuarios},
		{"departamentos", s.seedDepartamentos},
		{"provincias", s.seedProvincias},
		{"distritos", s.seedDistritos},
		{"lotes", s.seedLotes},
		{"ventas", s.seedVentas},
	}

	for _, e := range etapas {
		if err := e.fn(ctx); err != nil {
			return fmt.Errorf("etapa %s: %w", e.tabla, err)
		}
	}

	s.log.Info().Msg("seed completado")
	return nil
}

// skip reports whether a stage should run, logging the no-op case.
func (s *Seeder) skip(tabla string, count func(context.Context) (int64, error), ctx context.Context) (bool, error) {
	n, err := count(ctx)
	if err != nil {
		return false, fmt.Errorf("contar filas de %s: %w", tabla, err)
	}
	if n > 0 {
		s.log.Info().Str("tabla", tabla).Int64("filas", n).Msg("tabla ya poblada, etapa omitida")
		return true, nil
	}
	return false, nil
}

func (s *Seeder) inserted(tabla string, filas int) {
	s.log.Info().Str("tabla", tabla).Int("filas", filas).Msg("tabla poblada")
}

func ptr(v string) *string { return &v }

// ── Lookup catalogs ──────────────────────────────────────────────────────────

func (s *Seeder) seedEstadosLote(ctx context.Context) error {
	if omit, err := s.skip("estados_lote", s.repos.EstadosLote.Count, ctx); omit || err != nil {
		return err
	}
	items := make([]model.EstadoLote, 0, len(estadosLoteData))
	for _, d := range estadosLoteData {
		items = append(items, model.EstadoLote{Nombre: d.nombre, Descripcion: ptr(d.descripcion), Activo: true})
	}
	if err := s.repos.EstadosLote.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("estados_lote", len(items))
	return nil
}

func (s *Seeder) seedEstadosVenta(ctx context.Context) error {
	if omit, err := s.skip("estados_venta", s.repos.EstadosVenta.Count, ctx); omit || err != nil {
		return err
	}
	items := make([]model.EstadoVenta, 0, len(estadosVentaData))
	for _, d := range estadosVentaData {
		items = append(items, model.EstadoVenta{Nombre: d.nombre, Descripcion: ptr(d.descripcion), Activo: true})
	}
	if err := s.repos.EstadosVenta.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("estados_venta", len(items))
	return nil
}

func (s *Seeder) seedMonedas(ctx context.Context) error {
	if omit, err := s.skip("monedas", s.repos.Monedas.Count, ctx); omit || err != nil {
		return err
	}
	items := make([]model.Moneda, 0, len(monedasData))
	for _, d := range monedasData {
		items = append(items, model.Moneda{Codigo: d.codigo, Descripcion: ptr(d.descripcion), Activo: true})
	}
	if err := s.repos.Monedas.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("monedas", len(items))
	return nil
}

func (s *Seeder) seedTiposDocumento(ctx context.Context) error {
	if omit, err := s.skip("tipos_documento", s.repos.TiposDocumento.Count, ctx); omit || err != nil {
		return err
	}
	items := make([]model.TipoDocumento, 0, len(tiposDocumentoData))
	for _, d := range tiposDocumentoData {
		items = append(items, model.TipoDocumento{Nombre: d.nombre, Descripcion: ptr(d.descripcion), Activo: true})
	}
	if err := s.repos.TiposDocumento.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("tipos_documento", len(items))
	return nil
}

func (s *Seeder) seedTiposLote(ctx context.Context) error {
	if omit, err := s.skip("tipos_lote", s.repos.TiposLote.Count, ctx); omit || err != nil {
		return err
	}
	items := make([]model.TipoLote, 0, len(tiposLoteData))
	for _, d := range tiposLoteData {
		items = append(items, model.TipoLote{Nombre: d.nombre, Descripcion: ptr(d.descripcion), Activo: true})
	}
	if err := s.repos.TiposLote.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("tipos_lote", len(items))
	return nil
}

func (s *Seeder) seedRoles(ctx context.Context) error {
	if omit, err := s.skip("roles", s.repos.Roles.Count, ctx); omit || err != nil {
		return err
	}
	items := make([]model.Rol, 0, len(rolesData))
	for _, d := range rolesData {
		items = append(items, model.Rol{Nombre: d.nombre, Descripcion: ptr(d.descripcion), Activo: true})
	}
	if err := s.repos.Roles.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("roles", len(items))
	return nil
}

// ── Reference-data consumers ─────────────────────────────────────────────────

func (s *Seeder) seedClientes(ctx context.Context) error {
	if omit, err := s.skip("clientes", s.repos.Clientes.Count, ctx); omit || err != nil {
		return err
	}

	tiposDoc, err := s.mapaTiposDocumento(ctx)
	if err != nil {
		return err
	}

	items := make([]model.Cliente, 0, len(clientesData))
	for _, d := range clientesData {
		tipoID, ok := tiposDoc[d.tipoDocumento]
		if !ok {
			return &ParentNoEncontradoError{Tabla: "tipos_documento", Clave: d.tipoDocumento}
		}
		items = append(items, model.Cliente{
			Nombres:         d.nombres,
			Apellidos:       d.apellidos,
			TipoDocumentoID: tipoID,
			NumeroDocumento: d.numeroDocumento,
			Telefono:        ptr(d.telefono),
			Email:           ptr(d.email),
			Direccion:       ptr(d.direccion),
			Visitas:         d.visitas,
			Activo:          true,
		})
	}
	if err := s.repos.Clientes.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("clientes", len(items))
	return nil
}

func (s *Seeder) seedUsuarios(ctx context.Context) error {
	if omit, err := s.skip("usuarios", s.repos.Usuarios.Count, ctx); omit || err != nil {
		return err
	}

	roles, err := s.mapaRoles(ctx)
	if err != nil {
		return err
	}

	items := make([]model.Usuario, 0, len(usuariosData))
	for _, d := range usuariosData {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), 12)
		if err != nil {
			return fmt.Errorf("hash de contraseña para %s: %w", d.username, err)
		}
		u := model.Usuario{
			Username:     d.username,
			Nombre:       d.nombre,
			Email:        ptr(d.email),
			PasswordHash: string(hash),
			Activo:       true,
		}
		for _, nombreRol := range d.roles {
			rol, ok := roles[nombreRol]
			if !ok {
				return &ParentNoEncontradoError{Tabla: "roles", Clave: nombreRol}
			}
			u.Roles = append(u.Roles, rol)
		}
		items = append(items, u)
	}
	if err := s.repos.Usuarios.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("usuarios", len(items))
	return nil
}

// ── Geographic hierarchy ─────────────────────────────────────────────────────

func (s *Seeder) seedDepartamentos(ctx context.Context) error {
	if omit, err := s.skip("departamentos", s.repos.Departamentos.Count, ctx); omit || err != nil {
		return err
	}
	items := make([]model.Departamento, 0, len(departamentosData))
	for _, nombre := range departamentosData {
		items = append(items, model.Departamento{
			Nombre:      nombre,
			Descripcion: ptr("Departamento de " + nombre),
			Activo:      true,
		})
	}
	if err := s.repos.Departamentos.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("departamentos", len(items))
	return nil
}

func (s *Seeder) seedProvincias(ctx context.Context) error {
	if omit, err := s.skip("provincias", s.repos.Provincias.Count, ctx); omit || err != nil {
		return err
	}

	departamentos, err := s.mapaDepartamentos(ctx)
	if err != nil {
		return err
	}

	items := make([]model.Provincia, 0, len(provinciasData))
	for _, d := range provinciasData {
		depID, ok := departamentos[d.departamento]
		if !ok {
			return &ParentNoEncontradoError{Tabla: "departamentos", Clave: d.departamento}
		}
		items = append(items, model.Provincia{
			Nombre:         d.nombre,
			Descripcion:    ptr("Provincia de " + d.nombre),
			DepartamentoID: depID,
			Activo:         true,
		})
	}
	if err := s.repos.Provincias.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("provincias", len(items))
	return nil
}

func (s *Seeder) seedDistritos(ctx context.Context) error {
	if omit, err := s.skip("distritos", s.repos.Distritos.Count, ctx); omit || err != nil {
		return err
	}

	provincias, err := s.mapaProvincias(ctx)
	if err != nil {
		return err
	}

	var items []model.Distrito
	for _, p := range provinciasData {
		provID, ok := provincias[p.nombre]
		if !ok {
			return &ParentNoEncontradoError{Tabla: "provincias", Clave: p.nombre}
		}
		for _, nombre := range p.distritos {
			items = append(items, model.Distrito{
				Nombre:      nombre,
				Descripcion: ptr("Distrito de " + nombre),
				ProvinciaID: provID,
				Activo:      true,
			})
		}
	}
	if err := s.repos.Distritos.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("distritos", len(items))
	return nil
}

// ── Inventory and transactions ───────────────────────────────────────────────

func (s *Seeder) seedLotes(ctx context.Context) error {
	if omit, err := s.skip("lotes", s.repos.Lotes.Count, ctx); omit || err != nil {
		return err
	}

	// Every lote starts its life Disponible.
	disponible, err := s.repos.EstadosLote.FindByNombre(ctx, model.EstadoLoteDisponible)
	if err != nil {
		return parentErr("estados_lote", model.EstadoLoteDisponible, err)
	}
	tiposLote, err := s.mapaTiposLote(ctx)
	if err != nil {
		return err
	}
	distritos, err := s.mapaDistritos(ctx)
	if err != nil {
		return err
	}

	items := make([]model.Lote, 0, len(lotesData))
	for _, d := range lotesData {
		tipoID, ok := tiposLote[d.tipoLote]
		if !ok {
			return &ParentNoEncontradoError{Tabla: "tipos_lote", Clave: d.tipoLote}
		}
		// Distrito names are ambiguous on their own; the composite
		// (provincia, nombre) key is the only sound lookup.
		distritoID, ok := distritos[claveDistrito{Provincia: d.provincia, Nombre: d.distrito}]
		if !ok {
			return &ParentNoEncontradoError{Tabla: "distritos", Clave: d.provincia + "/" + d.distrito}
		}
		items = append(items, model.Lote{
			Nombre:       d.nombre,
			Descripcion:  ptr(d.descripcion),
			Precio:       d.precio,
			Area:         d.area,
			TipoLoteID:   tipoID,
			EstadoLoteID: disponible.ID,
			DistritoID:   distritoID,
			Direccion:    ptr(d.direccion),
			Activo:       true,
		})
	}
	if err := s.repos.Lotes.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("lotes", len(items))
	return nil
}

// seedVentas creates sample ventas in estado Pendiente. Deliberately kept
// as observed upstream: the referenced lote stays Disponible instead of
// moving to Reservado. See DESIGN.md before changing this.
func (s *Seeder) seedVentas(ctx context.Context) error {
	if omit, err := s.skip("ventas", s.repos.Ventas.Count, ctx); omit || err != nil {
		return err
	}

	pendiente, err := s.repos.EstadosVenta.FindByNombre(ctx, model.EstadoVentaPendiente)
	if err != nil {
		return parentErr("estados_venta", model.EstadoVentaPendiente, err)
	}

	items := make([]model.Venta, 0, len(ventasData))
	for _, d := range ventasData {
		cliente, err := s.repos.Clientes.FindByDocumento(ctx, d.clienteDocumento)
		if err != nil {
			return parentErr("clientes", d.clienteDocumento, err)
		}
		lote, err := s.repos.Lotes.FindByNombre(ctx, d.lote)
		if err != nil {
			return parentErr("lotes", d.lote, err)
		}
		moneda, err := s.repos.Monedas.FindByCodigo(ctx, d.moneda)
		if err != nil {
			return parentErr("monedas", d.moneda, err)
		}
		items = append(items, model.Venta{
			ClienteID:     cliente.ID,
			LoteID:        lote.ID,
			EstadoVentaID: pendiente.ID,
			MonedaID:      moneda.ID,
			Fecha:         d.fecha,
			Monto:         d.monto,
			Activo:        true,
		})
	}
	if err := s.repos.Ventas.CreateBatch(ctx, items); err != nil {
		return err
	}
	s.inserted("ventas", len(items))
	return nil
}

// ── Natural-key maps ─────────────────────────────────────────────────────────
// Parent references in the seed data are names, not identifiers. Each child
// stage loads its parent table once and resolves against an in-memory map,
// avoiding a round-trip per record.

func (s *Seeder) mapaDepartamentos(ctx context.Context) (map[string]uuid.UUID, error) {
	list, err := s.repos.Departamentos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar departamentos: %w", err)
	}
	m := make(map[string]uuid.UUID, len(list))
	for _, d := range list {
		m[d.Nombre] = d.ID
	}
	return m, nil
}

func (s *Seeder) mapaProvincias(ctx context.Context) (map[string]uuid.UUID, error) {
	list, err := s.repos.Provincias.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar provincias: %w", err)
	}
	m := make(map[string]uuid.UUID, len(list))
	for _, p := range list {
		m[p.Nombre] = p.ID
	}
	return m, nil
}

// claveDistrito is the composite natural key of a distrito. Provincia names
// are unique nationwide, so the provincia name stands in for its identifier.
type claveDistrito struct {
	Provincia string
	Nombre    string
}

func (s *Seeder) mapaDistritos(ctx context.Context) (map[claveDistrito]uuid.UUID, error) {
	provincias, err := s.repos.Provincias.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar provincias: %w", err)
	}
	nombrePorID := make(map[uuid.UUID]string, len(provincias))
	for _, p := range provincias {
		nombrePorID[p.ID] = p.Nombre
	}

	distritos, err := s.repos.Distritos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar distritos: %w", err)
	}
	m := make(map[claveDistrito]uuid.UUID, len(distritos))
	for _, d := range distritos {
		m[claveDistrito{Provincia: nombrePorID[d.ProvinciaID], Nombre: d.Nombre}] = d.ID
	}
	return m, nil
}

func (s *Seeder) mapaTiposDocumento(ctx context.Context) (map[string]uuid.UUID, error) {
	list, err := s.repos.TiposDocumento.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar tipos de documento: %w", err)
	}
	m := make(map[string]uuid.UUID, len(list))
	for _, t := range list {
		m[t.Nombre] = t.ID
	}
	return m, nil
}

func (s *Seeder) mapaTiposLote(ctx context.Context) (map[string]uuid.UUID, error) {
	list, err := s.repos.TiposLote.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar tipos de lote: %w", err)
	}
	m := make(map[string]uuid.UUID, len(list))
	for _, t := range list {
		m[t.Nombre] = t.ID
	}
	return m, nil
}

func (s *Seeder) mapaRoles(ctx context.Context) (map[string]model.Rol, error) {
	list, err := s.repos.Roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar roles: %w", err)
	}
	m := make(map[string]model.Rol, len(list))
	for _, rol := range list {
		m[rol.Nombre] = rol
	}
	return m, nil
}

// parentErr turns a not-found lookup into a ParentNoEncontradoError and
// passes storage failures through unchanged.
func parentErr(tabla, clave string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ParentNoEncontradoError{Tabla: tabla, Clave: clave}
	}
	return fmt.Errorf("buscar %q en %s: %w", clave, tabla, err)
}
