package infra

import (
	"fmt"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for every persisted entity. Migration order mirrors the seed
// dependency order so foreign keys always point at tables that already exist.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.EstadoLote{},
		&model.EstadoVenta{},
		&model.Moneda{},
		&model.TipoDocumento{},
		&model.TipoLote{},
		&model.Rol{},
		&model.Usuario{},
		&model.Cliente{},
		&model.Departamento{},
		&model.Provincia{},
		&model.Distrito{},
		&model.Lote{},
		&model.Venta{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
