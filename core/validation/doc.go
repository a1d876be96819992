// Package validation checks untyped submissions before anything is written.
//
// Decode is the row validator: it coerces a raw record (JSON body, spreadsheet row)
// into a typed record and applies its `validate` struct tags. Every failure comes back as
// a FieldError value; Decode never panics on bad input.
//
// CheckReferences is the reference validator: given the foreign key fields of a record
// and a Snapshot of the ids that exist in the referenced tables, it reports each
// non-empty value that does not resolve. Empty optional references pass.
package validation
