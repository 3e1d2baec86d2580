package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users. Roles are a set linked through the
// usuario_roles join table; PasswordHash is bcrypt.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Roles []Rol `gorm:"many2many:usuario_roles"`
}

func (Usuario) TableName() string { return "usuarios" }
