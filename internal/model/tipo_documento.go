package model

import (
	"time"

	"github.com/google/uuid"
)

// TipoDocumento is the identity-document catalog (DNI, RUC, Carnet de
// Extranjería, Pasaporte). Referenced by Cliente.
type TipoDocumento struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TipoDocumento) TableName() string { return "tipos_documento" }
