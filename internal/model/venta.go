package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta links a cliente to a lote. Seeded with estado = Pendiente.
//
// Creating a venta does NOT transition the referenced lote away from
// Disponible; that is the observed upstream behavior, kept as-is rather
// than silently corrected. See DESIGN.md.
type Venta struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	LoteID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	EstadoVentaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonedaID      uuid.UUID       `gorm:"type:uuid;not null"`
	Fecha         time.Time       `gorm:"not null"`
	Monto         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Activo        bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Cliente     *Cliente     `gorm:"foreignKey:ClienteID"`
	Lote        *Lote        `gorm:"foreignKey:LoteID"`
	EstadoVenta *EstadoVenta `gorm:"foreignKey:EstadoVentaID"`
	Moneda      *Moneda      `gorm:"foreignKey:MonedaID"`
}

func (Venta) TableName() string { return "ventas" }
