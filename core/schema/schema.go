package schema

import (
	"fmt"

	"gorm.io/gorm"
)

// AllModels returns all catalog models for GORM AutoMigrate, parents first.
func AllModels() []any {
	return []any{
		&Country{},
		&Origin{},
		&Brand{},
		&Category{},
		&Packaging{},
		&Drink{},
		&DrinkFormat{},
		&BeerStyle{},
		&Beer{},
		&BeerIdentity{},
		&SpiritType{},
		&SpiritAgingContainer{},
		&Spirit{},
		&SpiritIdentity{},
	}
}

// Migrate runs GORM AutoMigrate to create or update the catalog schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}

// TableName resolves the table a model is stored in.
func TableName(db *gorm.DB, model any) (string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return "", fmt.Errorf("failed to parse model %T: %w", model, err)
	}
	return stmt.Schema.Table, nil
}
