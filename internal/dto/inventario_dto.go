package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LoteResponse struct {
	ID          uuid.UUID       `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Area        decimal.Decimal `json:"area"`
	Tipo        string          `json:"tipo"`
	Estado      string          `json:"estado"`
	Distrito    string          `json:"distrito"`
	Direccion   *string         `json:"direccion,omitempty"`
	Activo      bool            `json:"activo"`
}

type ClienteResponse struct {
	ID              uuid.UUID `json:"id"`
	Nombres         string    `json:"nombres"`
	Apellidos       string    `json:"apellidos"`
	TipoDocumento   string    `json:"tipo_documento"`
	NumeroDocumento string    `json:"numero_documento"`
	Telefono        *string   `json:"telefono,omitempty"`
	Email           *string   `json:"email,omitempty"`
	Direccion       *string   `json:"direccion,omitempty"`
	Visitas         int       `json:"visitas"`
	Activo          bool      `json:"activo"`
}

type VentaResponse struct {
	ID      uuid.UUID       `json:"id"`
	Cliente string          `json:"cliente"`
	Lote    string          `json:"lote"`
	Estado  string          `json:"estado"`
	Moneda  string          `json:"moneda"`
	Fecha   time.Time       `json:"fecha"`
	Monto   decimal.Decimal `json:"monto"`
	Activo  bool            `json:"activo"`
}
