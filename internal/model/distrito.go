package model

import (
	"time"

	"github.com/google/uuid"
)

// Distrito is the leaf of the geographic tree. Distrito names are NOT
// globally unique ("San Juan" recurs under several provincias), so the only
// well-defined natural key is the composite (provincia_id, nombre).
type Distrito struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null;uniqueIndex:idx_distrito_provincia_nombre"`
	Descripcion *string
	ProvinciaID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_distrito_provincia_nombre"`
	Activo      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Provincia *Provincia `gorm:"foreignKey:ProvinciaID"`
}

func (Distrito) TableName() string { return "distritos" }
