package dto

import "github.com/google/uuid"

// CatalogoItemResponse is the shared response shape for the flat lookup
// catalogs (tipos de documento, tipos de lote, estados, roles).
type CatalogoItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion *string   `json:"descripcion,omitempty"`
	Activo      bool      `json:"activo"`
}

type MonedaResponse struct {
	ID          uuid.UUID `json:"id"`
	Codigo      string    `json:"codigo"`
	Descripcion *string   `json:"descripcion,omitempty"`
	Activo      bool      `json:"activo"`
}
