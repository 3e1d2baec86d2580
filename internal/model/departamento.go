package model

import (
	"time"

	"github.com/google/uuid"
)

// Departamento is the root of the geographic tree (departamento → provincia → distrito).
// Rows are created once by the seeder and never mutated afterwards.
type Departamento struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Departamento) TableName() string { return "departamentos" }
