// Package drinks exposes beverage catalog ingestion over HTTP.
//
// Products (beers and spirits) are submitted one at a time or as workbooks. Single
// submissions reserve the identity hash first and report duplicates; workbook rows
// are upserted so that re-importing a file converges on the same catalog.
//
// # Components
//
//   - Service: Wraps the ingest importer, exporter and optional archiver. Also used by the CLI.
//   - Handler: Maps ingestion outcomes to HTTP status codes.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /beers, /spirits : Single product ingestion (201, 400, 409, 500).
//   - POST /import-beers, /import-spirits : Product workbook import, always 200 with a report.
//   - POST /catalog : Reference catalog workbook import.
//   - POST /countries, /origins, /brands, /categories, /packaging, /beer-styles,
//     /spirit-types, /spirit-aging-containers : Single reference row insert.
//   - GET /export-beers, /export-spirits : Import templates prefilled with the catalog.
//   - GET /imports/:target, /imports/:target/:id : Archived imports and their reports.
package drinks
