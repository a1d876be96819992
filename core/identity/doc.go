// Package identity derives the content identifiers used by the catalog.
//
// Hash turns a product submission into its identity hash: the SHA-256 of a
// pipe-delimited string of the normalized name, the brand, the ABV at one decimal,
// the category, the packaging, the volume and the category specific type id. Two
// submissions describing the same sellable format collide on this hash regardless of
// name casing, surrounding whitespace or "5" versus "5.0" for the ABV.
//
// Slug turns a display name into the identifier used for beer styles, spirit types and
// aging containers.
package identity
