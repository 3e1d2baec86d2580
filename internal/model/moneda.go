package model

import (
	"time"

	"github.com/google/uuid"
)

// Moneda is the currency catalog (PEN, USD). Referenced by Venta.
type Moneda struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo      string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Moneda) TableName() string { return "monedas" }
