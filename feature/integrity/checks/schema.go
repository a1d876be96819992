package checks

import (
	"fmt"
	"sort"

	"drinks-api/core/database"
	"drinks-api/core/schema"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a catalog schema check.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	// NullableColumns are NOT NULL in the model but nullable in the database.
	NullableColumns []string `json:"nullable_columns"`
	Status          string   `json:"status"` // "ok", "missing", "error"
}

// CheckSchema verifies the live database against the catalog models.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range schema.AllModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		actual, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tbl := TableReport{MissingColumns: []string{}, NullableColumns: []string{}, Status: "ok"}
		if len(actual) == 0 {
			tbl.Status = "missing"
			report.Matched = false
			report.Tables[table] = tbl
			continue
		}

		byName := make(map[string]database.ColumnInfo, len(actual))
		for _, col := range actual {
			byName[col.Field] = col
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			col, ok := byName[field.DBName]
			switch {
			case !ok:
				tbl.MissingColumns = append(tbl.MissingColumns, field.DBName)
			case field.NotNull && !field.PrimaryKey && col.Nullable:
				tbl.NullableColumns = append(tbl.NullableColumns, field.DBName)
			}
		}
		sort.Strings(tbl.MissingColumns)
		sort.Strings(tbl.NullableColumns)
		if len(tbl.MissingColumns) > 0 || len(tbl.NullableColumns) > 0 {
			tbl.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}
