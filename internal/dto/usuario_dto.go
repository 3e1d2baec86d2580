package dto

import "github.com/google/uuid"

// UsuarioResponse never carries the password hash.
type UsuarioResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Nombre   string    `json:"nombre"`
	Email    *string   `json:"email,omitempty"`
	Roles    []string  `json:"roles"`
	Activo   bool      `json:"activo"`
}
