package model

import (
	"time"

	"github.com/google/uuid"
)

// TipoLote classifies lotes by intended use (vivienda, comercial, etc.).
type TipoLote struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TipoLote) TableName() string { return "tipos_lote" }
