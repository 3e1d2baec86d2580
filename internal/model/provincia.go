package model

import (
	"time"

	"github.com/google/uuid"
)

// Provincia is the second level of the geographic tree. Every provincia must
// reference an existing departamento at creation time.
type Provincia struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"not null;uniqueIndex:idx_provincia_departamento_nombre"`
	Descripcion    *string
	DepartamentoID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_provincia_departamento_nombre"`
	Activo         bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Departamento *Departamento `gorm:"foreignKey:DepartamentoID"`
}

func (Provincia) TableName() string { return "provincias" }
