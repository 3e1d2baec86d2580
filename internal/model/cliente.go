package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a prospective or actual buyer. The pair
// (tipo_documento_id, numero_documento) is intended to be unique but the
// seed path does not enforce it; the API layer validates on creation.
type Cliente struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombres         string    `gorm:"not null"`
	Apellidos       string    `gorm:"not null"`
	TipoDocumentoID uuid.UUID `gorm:"type:uuid;not null;index"`
	NumeroDocumento string    `gorm:"type:varchar(20);not null;index"`
	Telefono        *string
	Email           *string
	Direccion       *string
	// Visitas counts showings/contact events, used by sales follow-up reports.
	Visitas   int  `gorm:"not null;default:0"`
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	TipoDocumento *TipoDocumento `gorm:"foreignKey:TipoDocumentoID"`
}

func (Cliente) TableName() string { return "clientes" }
