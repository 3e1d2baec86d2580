package seed_test

// In-memory stub repositories backing the seeder tests. Creates assign IDs
// the way the DB default would; lookups return gorm.ErrRecordNotFound so the
// engine's not-found mapping is exercised for real.

import (
	"context"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/seed"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memStore struct {
	estadosLote    []model.EstadoLote
	estadosVenta   []model.EstadoVenta
	monedas        []model.Moneda
	tiposDocumento []model.TipoDocumento
	tiposLote      []model.TipoLote
	roles          []model.Rol
	usuarios       []model.Usuario
	clientes       []model.Cliente
	departamentos  []model.Departamento
	provincias     []model.Provincia
	distritos      []model.Distrito
	lotes          []model.Lote
	ventas         []model.Venta
}

func newMemRepos() (*memStore, seed.Repos) {
	st := &memStore{}
	return st, seed.Repos{
		EstadosLote:    &stubEstadoLoteRepo{st},
		EstadosVenta:   &stubEstadoVentaRepo{st},
		Monedas:        &stubMonedaRepo{st},
		TiposDocumento: &stubTipoDocumentoRepo{st},
		Clientes:       &stubClienteRepo{st},
		TiposLote:      &stubTipoLoteRepo{st},
		Roles:          &stubRolRepo{st},
		Usuarios:       &stubUsuarioRepo{st},
		Departamentos:  &stubDepartamentoRepo{st},
		Provincias:     &stubProvinciaRepo{st},
		Distritos:      &stubDistritoRepo{st},
		Lotes:          &stubLoteRepo{st},
		Ventas:         &stubVentaRepo{st},
	}
}

// ── Lookup catalogs ──────────────────────────────────────────────────────────

type stubEstadoLoteRepo struct{ st *memStore }

func (r *stubEstadoLoteRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.estadosLote)), nil
}

func (r *stubEstadoLoteRepo) CreateBatch(_ context.Context, items []model.EstadoLote) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.estadosLote = append(r.st.estadosLote, items...)
	return nil
}

func (r *stubEstadoLoteRepo) FindByNombre(_ context.Context, nombre string) (*model.EstadoLote, error) {
	for i := range r.st.estadosLote {
		if r.st.estadosLote[i].Nombre == nombre {
			e := r.st.estadosLote[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEstadoLoteRepo) List(context.Context) ([]model.EstadoLote, error) {
	return append([]model.EstadoLote(nil), r.st.estadosLote...), nil
}

func (r *stubEstadoLoteRepo) DeleteAll(context.Context) error {
	r.st.estadosLote = nil
	return nil
}

type stubEstadoVentaRepo struct{ st *memStore }

func (r *stubEstadoVentaRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.estadosVenta)), nil
}

func (r *stubEstadoVentaRepo) CreateBatch(_ context.Context, items []model.EstadoVenta) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.estadosVenta = append(r.st.estadosVenta, items...)
	return nil
}

func (r *stubEstadoVentaRepo) FindByNombre(_ context.Context, nombre string) (*model.EstadoVenta, error) {
	for i := range r.st.estadosVenta {
		if r.st.estadosVenta[i].Nombre == nombre {
			e := r.st.estadosVenta[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEstadoVentaRepo) List(context.Context) ([]model.EstadoVenta, error) {
	return append([]model.EstadoVenta(nil), r.st.estadosVenta...), nil
}

func (r *stubEstadoVentaRepo) DeleteAll(context.Context) error {
	r.st.estadosVenta = nil
	return nil
}

type stubMonedaRepo struct{ st *memStore }

func (r *stubMonedaRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.monedas)), nil
}

func (r *stubMonedaRepo) CreateBatch(_ context.Context, items []model.Moneda) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.monedas = append(r.st.monedas, items...)
	return nil
}

func (r *stubMonedaRepo) FindByCodigo(_ context.Context, codigo string) (*model.Moneda, error) {
	for i := range r.st.monedas {
		if r.st.monedas[i].Codigo == codigo {
			m := r.st.monedas[i]
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMonedaRepo) List(context.Context) ([]model.Moneda, error) {
	return append([]model.Moneda(nil), r.st.monedas...), nil
}

func (r *stubMonedaRepo) DeleteAll(context.Context) error {
	r.st.monedas = nil
	return nil
}

type stubTipoDocumentoRepo struct{ st *memStore }

func (r *stubTipoDocumentoRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.tiposDocumento)), nil
}

func (r *stubTipoDocumentoRepo) CreateBatch(_ context.Context, items []model.TipoDocumento) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.tiposDocumento = append(r.st.tiposDocumento, items...)
	return nil
}

func (r *stubTipoDocumentoRepo) FindByNombre(_ context.Context, nombre string) (*model.TipoDocumento, error) {
	for i := range r.st.tiposDocumento {
		if r.st.tiposDocumento[i].Nombre == nombre {
			t := r.st.tiposDocumento[i]
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTipoDocumentoRepo) List(context.Context) ([]model.TipoDocumento, error) {
	return append([]model.TipoDocumento(nil), r.st.tiposDocumento...), nil
}

func (r *stubTipoDocumentoRepo) DeleteAll(context.Context) error {
	r.st.tiposDocumento = nil
	return nil
}

type stubTipoLoteRepo struct{ st *memStore }

func (r *stubTipoLoteRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.tiposLote)), nil
}

func (r *stubTipoLoteRepo) CreateBatch(_ context.Context, items []model.TipoLote) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.tiposLote = append(r.st.tiposLote, items...)
	return nil
}

func (r *stubTipoLoteRepo) FindByNombre(_ context.Context, nombre string) (*model.TipoLote, error) {
	for i := range r.st.tiposLote {
		if r.st.tiposLote[i].Nombre == nombre {
			t := r.st.tiposLote[i]
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTipoLoteRepo) List(context.Context) ([]model.TipoLote, error) {
	return append([]model.TipoLote(nil), r.st.tiposLote...), nil
}

func (r *stubTipoLoteRepo) DeleteAll(context.Context) error {
	r.st.tiposLote = nil
	return nil
}

type stubRolRepo struct{ st *memStore }

func (r *stubRolRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.roles)), nil
}

func (r *stubRolRepo) CreateBatch(_ context.Context, items []model.Rol) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.roles = append(r.st.roles, items...)
	return nil
}

func (r *stubRolRepo) FindByNombre(_ context.Context, nombre string) (*model.Rol, error) {
	for i := range r.st.roles {
		if r.st.roles[i].Nombre == nombre {
			rol := r.st.roles[i]
			return &rol, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRolRepo) List(context.Context) ([]model.Rol, error) {
	return append([]model.Rol(nil), r.st.roles...), nil
}

func (r *stubRolRepo) DeleteAll(context.Context) error {
	r.st.roles = nil
	return nil
}

// ── Reference-data consumers ─────────────────────────────────────────────────

type stubUsuarioRepo struct{ st *memStore }

func (r *stubUsuarioRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.usuarios)), nil
}

func (r *stubUsuarioRepo) CreateBatch(_ context.Context, items []model.Usuario) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.usuarios = append(r.st.usuarios, items...)
	return nil
}

func (r *stubUsuarioRepo) List(context.Context) ([]model.Usuario, error) {
	return append([]model.Usuario(nil), r.st.usuarios...), nil
}

type stubClienteRepo struct{ st *memStore }

func (r *stubClienteRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.clientes)), nil
}

func (r *stubClienteRepo) CreateBatch(_ context.Context, items []model.Cliente) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.clientes = append(r.st.clientes, items...)
	return nil
}

func (r *stubClienteRepo) FindByDocumento(_ context.Context, numeroDocumento string) (*model.Cliente, error) {
	for i := range r.st.clientes {
		if r.st.clientes[i].NumeroDocumento == numeroDocumento {
			c := r.st.clientes[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) List(context.Context) ([]model.Cliente, error) {
	return append([]model.Cliente(nil), r.st.clientes...), nil
}

// ── Geographic hierarchy ─────────────────────────────────────────────────────

type stubDepartamentoRepo struct{ st *memStore }

func (r *stubDepartamentoRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.departamentos)), nil
}

func (r *stubDepartamentoRepo) CreateBatch(_ context.Context, items []model.Departamento) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.departamentos = append(r.st.departamentos, items...)
	return nil
}

func (r *stubDepartamentoRepo) FindByNombre(_ context.Context, nombre string) (*model.Departamento, error) {
	for i := range r.st.departamentos {
		if r.st.departamentos[i].Nombre == nombre {
			d := r.st.departamentos[i]
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDepartamentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Departamento, error) {
	for i := range r.st.departamentos {
		if r.st.departamentos[i].ID == id {
			d := r.st.departamentos[i]
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDepartamentoRepo) List(context.Context) ([]model.Departamento, error) {
	return append([]model.Departamento(nil), r.st.departamentos...), nil
}

type stubProvinciaRepo struct{ st *memStore }

func (r *stubProvinciaRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.provincias)), nil
}

func (r *stubProvinciaRepo) CreateBatch(_ context.Context, items []model.Provincia) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.provincias = append(r.st.provincias, items...)
	return nil
}

func (r *stubProvinciaRepo) FindByNombre(_ context.Context, nombre string) (*model.Provincia, error) {
	for i := range r.st.provincias {
		if r.st.provincias[i].Nombre == nombre {
			p := r.st.provincias[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProvinciaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Provincia, error) {
	for i := range r.st.provincias {
		if r.st.provincias[i].ID == id {
			p := r.st.provincias[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProvinciaRepo) List(context.Context) ([]model.Provincia, error) {
	return append([]model.Provincia(nil), r.st.provincias...), nil
}

func (r *stubProvinciaRepo) ListByDepartamento(_ context.Context, departamentoID uuid.UUID) ([]model.Provincia, error) {
	var list []model.Provincia
	for _, p := range r.st.provincias {
		if p.DepartamentoID == departamentoID {
			list = append(list, p)
		}
	}
	return list, nil
}

type stubDistritoRepo struct{ st *memStore }

func (r *stubDistritoRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.distritos)), nil
}

func (r *stubDistritoRepo) CreateBatch(_ context.Context, items []model.Distrito) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.distritos = append(r.st.distritos, items...)
	return nil
}

func (r *stubDistritoRepo) FindByProvinciaYNombre(_ context.Context, provinciaID uuid.UUID, nombre string) (*model.Distrito, error) {
	for i := range r.st.distritos {
		if r.st.distritos[i].ProvinciaID == provinciaID && r.st.distritos[i].Nombre == nombre {
			d := r.st.distritos[i]
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDistritoRepo) List(context.Context) ([]model.Distrito, error) {
	return append([]model.Distrito(nil), r.st.distritos...), nil
}

func (r *stubDistritoRepo) ListByProvincia(_ context.Context, provinciaID uuid.UUID) ([]model.Distrito, error) {
	var list []model.Distrito
	for _, d := range r.st.distritos {
		if d.ProvinciaID == provinciaID {
			list = append(list, d)
		}
	}
	return list, nil
}

// ── Inventory and transactions ───────────────────────────────────────────────

type stubLoteRepo struct{ st *memStore }

func (r *stubLoteRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.lotes)), nil
}

func (r *stubLoteRepo) CreateBatch(_ context.Context, items []model.Lote) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.lotes = append(r.st.lotes, items...)
	return nil
}

func (r *stubLoteRepo) FindByNombre(_ context.Context, nombre string) (*model.Lote, error) {
	for i := range r.st.lotes {
		if r.st.lotes[i].Nombre == nombre {
			l := r.st.lotes[i]
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLoteRepo) List(context.Context) ([]model.Lote, error) {
	return append([]model.Lote(nil), r.st.lotes...), nil
}

type stubVentaRepo struct{ st *memStore }

func (r *stubVentaRepo) Count(context.Context) (int64, error) {
	return int64(len(r.st.ventas)), nil
}

func (r *stubVentaRepo) CreateBatch(_ context.Context, items []model.Venta) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	r.st.ventas = append(r.st.ventas, items...)
	return nil
}

func (r *stubVentaRepo) List(context.Context) ([]model.Venta, error) {
	return append([]model.Venta(nil), r.st.ventas...), nil
}
