package seed

import (
	"context"
	"fmt"
)

// Reset deletes every row from the six independent lookup catalogs. It is
// safe on an already-empty store: deleting nothing is not an error.
//
// Observed upstream behavior, kept as-is: the geographic tables
// (departamentos, provincias, distritos) and the transactional tables
// (clientes, usuarios, lotes, ventas) are NOT cleared. A reset therefore only
// re-seeds the catalogs; the rest of the store is left untouched. DESIGN.md
// records why this was reproduced instead of "fixed".
func (s *Seeder) Reset(ctx context.Context) error {
	catalogos := []struct {
		tabla string
		fn    func(context.Context) error
	}{
		{"estados_lote", s.repos.EstadosLote.DeleteAll},
		{"estados_venta", s.repos.EstadosVenta.DeleteAll},
		{"monedas", s.repos.Monedas.DeleteAll},
		{"tipos_documento", s.repos.TiposDocumento.DeleteAll},
		{"tipos_lote", s.repos.TiposLote.DeleteAll},
		{"roles", s.repos.Roles.DeleteAll},
	}

	for _, c := range catalogos {
		if err := c.fn(ctx); err != nil {
			return fmt.Errorf("vaciar %s: %w", c.tabla, err)
		}
		s.log.Info().Str("tabla", c.tabla).Msg("catálogo vaciado")
	}
	return nil
}
