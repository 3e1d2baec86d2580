package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lote is a sellable parcel. Seeded with estado = Disponible; the API layer
// owns all later transitions (Reservado, Vendido).
type Lote struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null;index"`
	Descripcion *string
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Area is in square meters.
	Area         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TipoLoteID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	EstadoLoteID uuid.UUID       `gorm:"type:uuid;not null;index"`
	DistritoID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Direccion    *string
	Activo       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	TipoLote   *TipoLote   `gorm:"foreignKey:TipoLoteID"`
	EstadoLote *EstadoLote `gorm:"foreignKey:EstadoLoteID"`
	Distrito   *Distrito   `gorm:"foreignKey:DistritoID"`
}

func (Lote) TableName() string { return "lotes" }
