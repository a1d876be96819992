// Package schematest provides in-memory catalog databases for tests.
package schematest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"drinks-api/core/database"
	"drinks-api/core/schema"

	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"gorm.io/gorm"
)

var callbackSeq atomic.Int64

// NewDB opens a migrated in-memory SQLite catalog.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Seed inserts a minimal reference catalog:
// country cl, origin o1, brand b1, categories c1/c2, packaging p1/p2,
// beer style s1, spirit type pisco and aging container roble.
func Seed(t testing.TB, db *gorm.DB) {
	t.Helper()
	rows := []any{
		&schema.Country{ID: "cl", Name: "Chile", ISOCode: "CL"},
		&schema.Origin{ID: "o1", CountryID: "cl", Region: pointy.String("Valparaíso")},
		&schema.Brand{ID: "b1", Name: "Cervecería Uno", OriginID: "o1", Website: "https://uno.example"},
		&schema.Category{ID: "c1", Name: "Beer"},
		&schema.Category{ID: "c2", Name: "Spirit"},
		&schema.Packaging{ID: "p1", Name: "Can"},
		&schema.Packaging{ID: "p2", Name: "Bottle"},
		&schema.BeerStyle{ID: "s1", Name: "Lager", OriginID: "o1"},
		&schema.SpiritType{ID: "pisco", Name: "Pisco"},
		&schema.SpiritAgingContainer{ID: "roble", Name: "Roble"},
	}
	for _, row := range rows {
		require.NoError(t, db.Create(row).Error)
	}
}

// FailCreate makes every create against table fail with err.
func FailCreate(db *gorm.DB, table string, err error) {
	name := fmt.Sprintf("schematest:fail_create_%d", callbackSeq.Add(1))
	_ = db.Callback().Create().Before("gorm:create").Register(name, failOn(table, err))
}

// FailDelete makes every delete against table fail with err.
func FailDelete(db *gorm.DB, table string, err error) {
	name := fmt.Sprintf("schematest:fail_delete_%d", callbackSeq.Add(1))
	_ = db.Callback().Delete().Before("gorm:delete").Register(name, failOn(table, err))
}

// Count returns the number of rows in table.
func Count(t testing.TB, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func failOn(table string, err error) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	}
}
