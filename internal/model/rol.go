package model

import (
	"time"

	"github.com/google/uuid"
)

// Rol is the user-role catalog (ADMIN, VENDEDOR). Attached to usuarios via
// the usuario_roles join table.
type Rol struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Rol) TableName() string { return "roles" }
