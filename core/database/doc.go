// Package database handles database connections and schema inspection.
//
// It wraps GORM so the rest of the service never deals with DSNs. MySQL, PostgreSQL and
// SQLite are supported; SQLite in memory is what the package tests run against.
//
// # Connect
//
// Connect opens the pool, routes GORM logs through zap (zapgorm2) and enables
// TranslateError so unique and foreign key failures surface as gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated. IsUniqueViolation and IsForeignKeyViolation are the
// checks the ingestion code relies on.
//
// # Schema Inspection
//
// GetTableColumns reads live column definitions, which the integrity check compares
// against the catalog models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database, log)
//	if err != nil {
//	    log.Fatal("Database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "drinks")
package database
