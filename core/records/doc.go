// Package records holds the typed shapes submissions are decoded into.
//
// Product records (BeerRecord, SpiritRecord) carry everything needed to derive the
// identity hash and to write the product, its detail and its format. Catalog rows map one
// to one onto reference tables; beer styles, spirit types and aging containers take
// their id from the slug of their name.
//
// Field tags drive validation.Decode: `json` is the submission key, `validate` the
// constraints and `label` the human name used in "is required" messages.
package records
