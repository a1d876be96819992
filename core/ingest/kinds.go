package ingest

import (
	"strings"
	"unicode"

	"drinks-api/core/reconcile"
	"drinks-api/core/records"
	"drinks-api/core/validation"
)

// SheetKind is the closed set of record kinds the service ingests.
type SheetKind int

const (
	KindCountries SheetKind = iota
	KindOrigins
	KindBrands
	KindCategories
	KindPackaging
	KindBeerStyles
	KindSpiritTypes
	KindSpiritAgingContainers
	KindBeers
	KindSpirits
)

// CatalogKinds returns the reference catalog kinds, parents before children.
func CatalogKinds() []SheetKind {
	return []SheetKind{
		KindCountries,
		KindOrigins,
		KindBrands,
		KindCategories,
		KindPackaging,
		KindBeerStyles,
		KindSpiritTypes,
		KindSpiritAgingContainers,
	}
}

// ParseSheetKind resolves a sheet or route name ("Beer Styles", "beer-styles",
// "BeerStyles") to its kind.
func ParseSheetKind(name string) (SheetKind, bool) {
	want := normalizeName(name)
	for k := KindCountries; k <= KindSpirits; k++ {
		if normalizeName(k.String()) == want {
			return k, true
		}
	}
	return 0, false
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String returns the sheet name of the kind.
func (k SheetKind) String() string {
	switch k {
	case KindCountries:
		return "Countries"
	case KindOrigins:
		return "Origins"
	case KindBrands:
		return "Brands"
	case KindCategories:
		return "Categories"
	case KindPackaging:
		return "Packaging"
	case KindBeerStyles:
		return "BeerStyles"
	case KindSpiritTypes:
		return "SpiritTypes"
	case KindSpiritAgingContainers:
		return "SpiritAgingContainers"
	case KindBeers:
		return "Beers"
	case KindSpirits:
		return "Spirits"
	default:
		return "Unknown"
	}
}

// Entity returns the singular name used in user facing messages.
func (k SheetKind) Entity() string {
	switch k {
	case KindCountries:
		return "Country"
	case KindOrigins:
		return "Origin"
	case KindBrands:
		return "Brand"
	case KindCategories:
		return "Category"
	case KindPackaging:
		return "Packaging"
	case KindBeerStyles:
		return "Beer style"
	case KindSpiritTypes:
		return "Spirit type"
	case KindSpiritAgingContainers:
		return "Spirit aging container"
	case KindBeers:
		return "Beer"
	case KindSpirits:
		return "Spirit"
	default:
		return "Record"
	}
}

// IsProduct reports whether rows of the kind go through the reconciler.
func (k SheetKind) IsProduct() bool {
	return k == KindBeers || k == KindSpirits
}

// Table returns the table catalog rows of the kind are stored in.
func (k SheetKind) Table() string {
	switch k {
	case KindCountries:
		return "countries"
	case KindOrigins:
		return "origins"
	case KindBrands:
		return "brands"
	case KindCategories:
		return "categories"
	case KindPackaging:
		return "packaging"
	case KindBeerStyles:
		return "beer_styles"
	case KindSpiritTypes:
		return "spirit_types"
	case KindSpiritAgingContainers:
		return "spirit_aging_containers"
	case KindBeers:
		return "beers"
	case KindSpirits:
		return "spirits"
	default:
		return ""
	}
}

// References returns the foreign key fields of the kind.
func (k SheetKind) References() []validation.Reference {
	switch k {
	case KindOrigins:
		return []validation.Reference{{Field: "countryId", Table: "countries"}}
	case KindBrands:
		return []validation.Reference{{Field: "originId", Table: "origins"}}
	case KindBeerStyles:
		return []validation.Reference{
			{Field: "originId", Table: "origins"},
			{Field: "parentStyleId", Table: "beer_styles"},
		}
	case KindBeers:
		return []validation.Reference{
			{Field: "brandId", Table: "brands"},
			{Field: "categoryId", Table: "categories"},
			{Field: "originId", Table: "origins"},
			{Field: "packagingId", Table: "packaging"},
			{Field: "beerStyleId", Table: "beer_styles"},
		}
	case KindSpirits:
		return []validation.Reference{
			{Field: "brandId", Table: "brands"},
			{Field: "categoryId", Table: "categories"},
			{Field: "originId", Table: "origins"},
			{Field: "packagingId", Table: "packaging"},
			{Field: "spiritTypeId", Table: "spirit_types"},
			{Field: "agingContainerId", Table: "spirit_aging_containers"},
		}
	default:
		return nil
	}
}

// selfReferencing reports whether rows of the kind may reference rows of the same sheet.
func (k SheetKind) selfReferencing() bool {
	for _, ref := range k.References() {
		if ref.Table == k.Table() {
			return true
		}
	}
	return false
}

// upsertColumns are the columns overwritten when a catalog row id already exists.
func (k SheetKind) upsertColumns() []string {
	switch k {
	case KindCountries:
		return []string{"name", "iso_code"}
	case KindOrigins:
		return []string{"country_id", "region"}
	case KindBrands:
		return []string{"name", "origin_id", "website"}
	case KindBeerStyles:
		return []string{"name", "description", "origin_id", "parent_style_id"}
	case KindSpiritTypes:
		return []string{"name", "description"}
	default:
		return []string{"name"}
	}
}

// Adapter returns the reconciler adapter of a product kind.
func (k SheetKind) Adapter() reconcile.Adapter {
	switch k {
	case KindBeers:
		return reconcile.BeerAdapter{}
	case KindSpirits:
		return reconcile.SpiritAdapter{}
	default:
		return nil
	}
}

func (k SheetKind) newRecord() any {
	switch k {
	case KindCountries:
		return &records.CountryRow{}
	case KindOrigins:
		return &records.OriginRow{}
	case KindBrands:
		return &records.BrandRow{}
	case KindCategories:
		return &records.CategoryRow{}
	case KindPackaging:
		return &records.PackagingRow{}
	case KindBeerStyles:
		return &records.BeerStyleRow{}
	case KindSpiritTypes:
		return &records.SpiritTypeRow{}
	case KindSpiritAgingContainers:
		return &records.SpiritAgingContainerRow{}
	case KindBeers:
		return &records.BeerRecord{}
	case KindSpirits:
		return &records.SpiritRecord{}
	default:
		return nil
	}
}

// Decode runs the row validator for the kind.
func (k SheetKind) Decode(raw map[string]any) (any, validation.FieldErrors) {
	rec := k.newRecord()
	if rec == nil {
		return nil, validation.FieldErrors{{Message: "unknown record kind " + k.String()}}
	}
	if errs := validation.Decode(raw, rec); len(errs) > 0 {
		return nil, errs
	}
	if row, ok := rec.(records.CatalogRow); ok && row.Key() == "" {
		return nil, validation.FieldErrors{{Field: "name", Value: raw["name"], Message: "must contain letters or digits"}}
	}
	return rec, nil
}
