package dto

import "github.com/google/uuid"

type DepartamentoResponse struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion *string   `json:"descripcion,omitempty"`
	Activo      bool      `json:"activo"`
}

type ProvinciaResponse struct {
	ID             uuid.UUID `json:"id"`
	Nombre         string    `json:"nombre"`
	Descripcion    *string   `json:"descripcion,omitempty"`
	DepartamentoID uuid.UUID `json:"departamento_id"`
	Activo         bool      `json:"activo"`
}

type DistritoResponse struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion *string   `json:"descripcion,omitempty"`
	ProvinciaID uuid.UUID `json:"provincia_id"`
	Activo      bool      `json:"activo"`
}
