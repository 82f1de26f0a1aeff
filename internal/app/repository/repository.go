package repository

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"marketplace-admin/internal/app/ds"
	"marketplace-admin/internal/app/pricing"
)

// Repository реализует хранилища пакета pricing поверх Postgres
type Repository struct {
	db *gorm.DB
}

var (
	_ pricing.MethodStore   = (*Repository)(nil)
	_ pricing.ModifierStore = (*Repository)(nil)
	_ pricing.ServiceStore  = (*Repository)(nil)
)

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return &Repository{
		db: db,
	}, nil
}

func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate создает и обновляет все таблицы
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&ds.User{},
		&ds.Category{},
		&ds.Service{},
		&ds.PricingMethod{},
		&ds.ServiceModifier{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// notFound переводит ошибку gorm в pricing.ErrNotFound
func notFound(err error, kind string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", kind, id, pricing.ErrNotFound)
	}
	return err
}
