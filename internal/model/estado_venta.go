package model

import (
	"time"

	"github.com/google/uuid"
)

// Fixed EstadoVenta vocabulary. Every venta is seeded as Pendiente.
const (
	EstadoVentaPendiente  = "Pendiente"
	EstadoVentaConfirmada = "Confirmada"
	EstadoVentaCancelada  = "Cancelada"
)

// EstadoVenta is the sale lifecycle catalog: Pendiente | Confirmada | Cancelada.
type EstadoVenta struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EstadoVenta) TableName() string { return "estados_venta" }
