package model

import (
	"time"

	"github.com/google/uuid"
)

// Fixed EstadoLote vocabulary. Every lote is seeded as Disponible.
const (
	EstadoLoteDisponible = "Disponible"
	EstadoLoteReservado  = "Reservado"
	EstadoLoteVendido    = "Vendido"
)

// EstadoLote is the lot lifecycle catalog: Disponible | Reservado | Vendido.
type EstadoLote struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EstadoLote) TableName() string { return "estados_lote" }
