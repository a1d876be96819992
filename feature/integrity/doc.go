// Package integrity provides system health checks for the catalog service.
//
// # Checks Provided
//
//   - Schema: Validates that the connected database holds every catalog table with the
//     columns and NOT NULL constraints the GORM models declare.
//   - Storage: Checks that the import archive bucket exists and counts archived imports
//     per kind. Skipped when no object storage is configured.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
