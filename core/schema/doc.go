// Package schema defines the GORM models of the beverage catalog.
//
// Reference tables (countries, origins, brands, categories, packaging, beer styles,
// spirit types, aging containers) are keyed by caller supplied or slug derived ids.
// Products live in drinks, their sellable formats in drink_formats and the category
// detail in beers or spirits, keyed by the drink id. The unique_*_identities tables hold
// nothing but reserved identity hashes; they carry no pointer back to the product.
//
// Association fields exist only so AutoMigrate emits foreign key constraints. They are
// never preloaded and never populated on write.
package schema
