package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/seed"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeeder(cfg seed.Config, repos seed.Repos) *seed.Seeder {
	return seed.New(cfg, repos, zerolog.Nop())
}

// snapshot captures per-table row counts for idempotence comparisons.
func snapshot(st *memStore) map[string]int {
	return map[string]int{
		"estados_lote":    len(st.estadosLote),
		"estados_venta":   len(st.estadosVenta),
		"monedas":         len(st.monedas),
		"tipos_documento": len(st.tiposDocumento),
		"tipos_lote":      len(st.tiposLote),
		"roles":           len(st.roles),
		"usuarios":        len(st.usuarios),
		"clientes":        len(st.clientes),
		"departamentos":   len(st.departamentos),
		"provincias":      len(st.provincias),
		"distritos":       len(st.distritos),
		"lotes":           len(st.lotes),
		"ventas":          len(st.ventas),
	}
}

func TestRunDeshabilitadoNoTocaElStore(t *testing.T) {
	// Zero-value repos: any read or write would dereference a nil interface
	// and panic, so a clean return proves the engine touched nothing.
	s := newSeeder(seed.Config{Enabled: false}, seed.Repos{})
	require.NoError(t, s.Run(context.Background()))
}

func TestRunPueblaStoreVacio(t *testing.T) {
	st, repos := newMemRepos()
	s := newSeeder(seed.Config{Enabled: true}, repos)
	require.NoError(t, s.Run(context.Background()))

	// Fixed vocabularies
	nombres := make([]string, 0, len(st.estadosLote))
	for _, e := range st.estadosLote {
		nombres = append(nombres, e.Nombre)
	}
	assert.ElementsMatch(t, []string{"Disponible", "Reservado", "Vendido"}, nombres)

	nombres = nombres[:0]
	for _, e := range st.estadosVenta {
		nombres = append(nombres, e.Nombre)
	}
	assert.ElementsMatch(t, []string{"Pendiente", "Confirmada", "Cancelada"}, nombres)

	assert.Len(t, st.departamentos, 25)
	assert.NotEmpty(t, st.provincias)
	assert.NotEmpty(t, st.distritos)
	assert.NotEmpty(t, st.clientes)
	assert.NotEmpty(t, st.usuarios)
	assert.NotEmpty(t, st.lotes)
	assert.NotEmpty(t, st.ventas)

	// Chachapoyas hangs off Amazonas, and at least one distrito hangs off
	// Chachapoyas.
	var amazonas *model.Departamento
	for i := range st.departamentos {
		if st.departamentos[i].Nombre == "Amazonas" {
			amazonas = &st.departamentos[i]
		}
	}
	require.NotNil(t, amazonas)

	var chachapoyas *model.Provincia
	for i := range st.provincias {
		if st.provincias[i].Nombre == "Chachapoyas" {
			chachapoyas = &st.provincias[i]
		}
	}
	require.NotNil(t, chachapoyas)
	assert.Equal(t, amazonas.ID, chachapoyas.DepartamentoID)

	found := false
	for _, d := range st.distritos {
		if d.ProvinciaID == chachapoyas.ID {
			found = true
			break
		}
	}
	assert.True(t, found, "Chachapoyas debe tener al menos un distrito")
}

func TestRunEsIdempotente(t *testing.T) {
	st, repos := newMemRepos()
	s := newSeeder(seed.Config{Enabled: true}, repos)

	require.NoError(t, s.Run(context.Background()))
	first := snapshot(st)

	// Second run: every stage sees a non-empty table and no-ops.
	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, first, snapshot(st))

	// No duplicate natural keys either.
	vistos := make(map[string]bool)
	for _, d := range st.departamentos {
		assert.False(t, vistos[d.Nombre], "departamento duplicado: %s", d.Nombre)
		vistos[d.Nombre] = true
	}
}

func TestRunIntegridadReferencial(t *testing.T) {
	st, repos := newMemRepos()
	s := newSeeder(seed.Config{Enabled: true}, repos)
	require.NoError(t, s.Run(context.Background()))

	departamentos := make(map[uuid.UUID]bool)
	for _, d := range st.departamentos {
		departamentos[d.ID] = true
	}
	provincias := make(map[uuid.UUID]bool)
	for _, p := range st.provincias {
		provincias[p.ID] = true
		assert.True(t, departamentos[p.DepartamentoID], "provincia %s sin departamento", p.Nombre)
	}
	distritos := make(map[uuid.UUID]bool)
	for _, d := range st.distritos {
		distritos[d.ID] = true
		assert.True(t, provincias[d.ProvinciaID], "distrito %s sin provincia", d.Nombre)
	}

	estadosLote := make(map[uuid.UUID]bool)
	for _, e := range st.estadosLote {
		estadosLote[e.ID] = true
	}
	tiposLote := make(map[uuid.UUID]bool)
	for _, tl := range st.tiposLote {
		tiposLote[tl.ID] = true
	}
	lotes := make(map[uuid.UUID]bool)
	for _, l := range st.lotes {
		lotes[l.ID] = true
		assert.True(t, estadosLote[l.EstadoLoteID], "lote %s sin estado", l.Nombre)
		assert.True(t, tiposLote[l.TipoLoteID], "lote %s sin tipo", l.Nombre)
		assert.True(t, distritos[l.DistritoID], "lote %s sin distrito", l.Nombre)
	}

	tiposDocumento := make(map[uuid.UUID]bool)
	for _, td := range st.tiposDocumento {
		tiposDocumento[td.ID] = true
	}
	clientes := make(map[uuid.UUID]bool)
	for _, c := range st.clientes {
		clientes[c.ID] = true
		assert.True(t, tiposDocumento[c.TipoDocumentoID], "cliente %s sin tipo de documento", c.NumeroDocumento)
	}

	estadosVenta := make(map[uuid.UUID]bool)
	for _, e := range st.estadosVenta {
		estadosVenta[e.ID] = true
	}
	monedas := make(map[uuid.UUID]bool)
	for _, m := range st.monedas {
		monedas[m.ID] = true
	}
	for _, v := range st.ventas {
		assert.True(t, clientes[v.ClienteID], "venta sin cliente")
		assert.True(t, lotes[v.LoteID], "venta sin lote")
		assert.True(t, estadosVenta[v.EstadoVentaID], "venta sin estado")
		assert.True(t, monedas[v.MonedaID], "venta sin moneda")
	}

	roles := make(map[uuid.UUID]bool)
	for _, rol := range st.roles {
		roles[rol.ID] = true
	}
	for _, u := range st.usuarios {
		require.NotEmpty(t, u.Roles, "usuario %s sin roles", u.Username)
		for _, rol := range u.Roles {
			assert.True(t, roles[rol.ID], "usuario %s con rol inexistente", u.Username)
		}
	}
}

func TestLotesSeSiembranDisponiblesYVentasPendientes(t *testing.T) {
	st, repos := newMemRepos()
	s := newSeeder(seed.Config{Enabled: true}, repos)
	require.NoError(t, s.Run(context.Background()))

	var disponible uuid.UUID
	for _, e := range st.estadosLote {
		if e.Nombre == model.EstadoLoteDisponible {
			disponible = e.ID
		}
	}
	require.NotEqual(t, uuid.Nil, disponible)
	for _, l := range st.lotes {
		assert.Equal(t, disponible, l.EstadoLoteID, "lote %s no se sembró Disponible", l.Nombre)
	}

	var pendiente uuid.UUID
	for _, e := range st.estadosVenta {
		if e.Nombre == model.EstadoVentaPendiente {
			pendiente = e.ID
		}
	}
	require.NotEqual(t, uuid.Nil, pendiente)
	for _, v := range st.ventas {
		assert.Equal(t, pendiente, v.EstadoVentaID, "venta no se sembró Pendiente")
	}
}

// Comportamiento observado, documentado y conservado: crear una venta NO
// transiciona el lote referenciado fuera de Disponible.
func TestVentaNoCambiaElEstadoDelLote(t *testing.T) {
	st, repos := newMemRepos()
	s := newSeeder(seed.Config{Enabled: true}, repos)
	require.NoError(t, s.Run(context.Background()))
	require.NotEmpty(t, st.ventas)

	var disponible uuid.UUID
	for _, e := range st.estadosLote {
		if e.Nombre == model.EstadoLoteDisponible {
			disponible = e.ID
		}
	}
	for _, v := range st.ventas {
		for _, l := range st.lotes {
			if l.ID == v.LoteID {
				assert.Equal(t, disponible, l.EstadoLoteID,
					"el lote vendido sigue Disponible (comportamiento actual)")
			}
		}
	}
}

func TestFindByNombreEnTablaNoSembrada(t *testing.T) {
	// Resolving a parent against a table that was never seeded must be a
	// typed not-found, never a false match.
	_, repos := newMemRepos()
	_, err := repos.Provincias.FindByNombre(context.Background(), "Chachapoyas")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPadreFaltanteAbortaElRun(t *testing.T) {
	// estados_lote pre-populated with a bogus row: the stage gate sees a
	// non-empty table and skips it, so "Disponible" never exists and the
	// lote stage must abort the whole run with the missing key.
	st, repos := newMemRepos()
	st.estadosLote = []model.EstadoLote{{ID: uuid.New(), Nombre: "Borrador", Activo: true}}

	s := newSeeder(seed.Config{Enabled: true}, repos)
	err := s.Run(context.Background())
	require.Error(t, err)

	var parentErr *seed.ParentNoEncontradoError
	require.ErrorAs(t, err, &parentErr)
	assert.Equal(t, "estados_lote", parentErr.Tabla)
	assert.Equal(t, model.EstadoLoteDisponible, parentErr.Clave)
}

func TestResetSobreStoreVacio(t *testing.T) {
	st, repos := newMemRepos()
	s := newSeeder(seed.Config{Enabled: true, Reset: true}, repos)
	require.NoError(t, s.Reset(context.Background()))
	for tabla, n := range snapshot(st) {
		assert.Zero(t, n, "tabla %s", tabla)
	}
}

// Comportamiento observado, documentado y conservado: Reset vacía únicamente
// los catálogos independientes; el árbol geográfico y las tablas
// transaccionales quedan intactos.
func TestResetSoloVaciaCatalogos(t *testing.T) {
	st, repos := newMemRepos()
	s := newSeeder(seed.Config{Enabled: true}, repos)
	require.NoError(t, s.Run(context.Background()))
	antes := snapshot(st)

	require.NoError(t, s.Reset(context.Background()))
	despues := snapshot(st)

	for _, tabla := range []string{"estados_lote", "estados_venta", "monedas", "tipos_documento", "tipos_lote", "roles"} {
		assert.Zero(t, despues[tabla], "catálogo %s debería quedar vacío", tabla)
	}
	for _, tabla := range []string{"departamentos", "provincias", "distritos", "clientes", "usuarios", "lotes", "ventas"} {
		assert.Equal(t, antes[tabla], despues[tabla], "tabla %s no debería cambiar", tabla)
	}
}

func TestRunConResetRepueblaCatalogos(t *testing.T) {
	st, repos := newMemRepos()

	require.NoError(t, newSeeder(seed.Config{Enabled: true}, repos).Run(context.Background()))
	first := snapshot(st)

	// reset=true wipes catalogs, then the run re-seeds them; the rest of the
	// store is already populated and every other stage no-ops.
	require.NoError(t, newSeeder(seed.Config{Enabled: true, Reset: true}, repos).Run(context.Background()))
	assert.Equal(t, first, snapshot(st))
}

func TestDistritosHomonimosSeDistinguenPorProvincia(t *testing.T) {
	st, repos := newMemRepos()
	s := newSeeder(seed.Config{Enabled: true}, repos)
	require.NoError(t, s.Run(context.Background()))

	var sanJuanes []model.Distrito
	for _, d := range st.distritos {
		if d.Nombre == "San Juan" {
			sanJuanes = append(sanJuanes, d)
		}
	}
	require.GreaterOrEqual(t, len(sanJuanes), 2, "el dataset debe traer distritos homónimos")

	provinciasVistas := make(map[uuid.UUID]bool)
	for _, d := range sanJuanes {
		assert.False(t, provinciasVistas[d.ProvinciaID], "dos San Juan en la misma provincia")
		provinciasVistas[d.ProvinciaID] = true
	}

	// The composite lookup resolves each homonym to its own row.
	for _, d := range sanJuanes {
		got, err := repos.Distritos.FindByProvinciaYNombre(context.Background(), d.ProvinciaID, "San Juan")
		require.NoError(t, err)
		assert.Equal(t, d.ID, got.ID)
	}
}

// ── Storage-error propagation ────────────────────────────────────────────────

type failingDepartamentoRepo struct {
	*stubDepartamentoRepo
	err error
}

func (r *failingDepartamentoRepo) CreateBatch(context.Context, []model.Departamento) error {
	return r.err
}

func TestErrorDeEscrituraAbortaElRun(t *testing.T) {
	st, repos := newMemRepos()
	boom := errors.New("write failed")
	repos.Departamentos = &failingDepartamentoRepo{&stubDepartamentoRepo{st}, boom}

	s := newSeeder(seed.Config{Enabled: true}, repos)
	err := s.Run(context.Background())
	require.ErrorIs(t, err, boom)

	// The failing stage wrote nothing and no later stage ran.
	assert.Empty(t, st.departamentos)
	assert.Empty(t, st.provincias)
	assert.Empty(t, st.lotes)
	assert.Empty(t, st.ventas)
}
