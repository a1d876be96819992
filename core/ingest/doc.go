// Package ingest orchestrates catalog submissions.
//
// # Batch imports
//
// A workbook is read into sheets (ReadWorkbook, xlsx or csv) and every sheet is
// processed in two passes by ImportSheet. The first pass decodes each row with the row
// validator and checks its foreign keys against a reference Snapshot loaded once for the
// sheet; bad rows are reported and skipped. The second pass applies the valid rows one at
// a time, upserting catalog rows by id and sending product rows through the reconciler's
// bulk path. A failing row never aborts the batch, so the Report is always
// {success: true, errors: [...]} with each error tagged by sheet and spreadsheet row.
//
// The kinds a sheet may hold are the closed SheetKind enumeration. Each kind fixes its
// record type, its foreign key fields and its upsert columns at compile time.
//
// # Single records
//
// Submit and SubmitCatalog handle one record: validate, check references against only
// the ids the record mentions, then write. The Outcome distinguishes created, invalid,
// duplicate and failed so the transport can pick a status code.
//
// # Templates and archives
//
// Exporter writes an import template prefilled with the current catalog, and Archiver
// keeps uploaded workbooks with their reports in object storage.
package ingest
