package records

import (
	"drinks-api/core/identity"
	"drinks-api/core/schema"
)

// CatalogRow is a decoded reference catalog row.
type CatalogRow interface {
	// Model returns the schema model the row is written as.
	Model() any
	// Key returns the primary key the row is stored under.
	Key() string
}

type CountryRow struct {
	ID      string `json:"id" label:"Id" validate:"required"`
	Name    string `json:"name" label:"Name" validate:"required"`
	ISOCode string `json:"isoCode" label:"ISO code" validate:"required"`
}

func (r *CountryRow) Key() string { return r.ID }

func (r *CountryRow) Model() any {
	return &schema.Country{ID: r.ID, Name: r.Name, ISOCode: r.ISOCode}
}

type OriginRow struct {
	ID        string  `json:"id" label:"Id" validate:"required"`
	CountryID string  `json:"countryId" label:"Country" validate:"required"`
	Region    *string `json:"region,omitempty" label:"Region"`
}

func (r *OriginRow) Key() string { return r.ID }

func (r *OriginRow) Model() any {
	return &schema.Origin{ID: r.ID, CountryID: r.CountryID, Region: r.Region}
}

type BrandRow struct {
	ID       string `json:"id" label:"Id" validate:"required"`
	Name     string `json:"name" label:"Name" validate:"required"`
	OriginID string `json:"originId" label:"Origin" validate:"required"`
	Website  string `json:"website" label:"Website" validate:"required"`
}

func (r *BrandRow) Key() string { return r.ID }

func (r *BrandRow) Model() any {
	return &schema.Brand{ID: r.ID, Name: r.Name, OriginID: r.OriginID, Website: r.Website}
}

type CategoryRow struct {
	ID   string `json:"id" label:"Id" validate:"required"`
	Name string `json:"name" label:"Name" validate:"required"`
}

func (r *CategoryRow) Key() string { return r.ID }

func (r *CategoryRow) Model() any {
	return &schema.Category{ID: r.ID, Name: r.Name}
}

type PackagingRow struct {
	ID   string `json:"id" label:"Id" validate:"required"`
	Name string `json:"name" label:"Name" validate:"required"`
}

func (r *PackagingRow) Key() string { return r.ID }

func (r *PackagingRow) Model() any {
	return &schema.Packaging{ID: r.ID, Name: r.Name}
}

// BeerStyleRow is keyed by the slug of its name.
type BeerStyleRow struct {
	Name          string  `json:"name" label:"Name" validate:"required"`
	Description   *string `json:"description,omitempty" label:"Description"`
	OriginID      string  `json:"originId" label:"Origin" validate:"required"`
	ParentStyleID *string `json:"parentStyleId,omitempty" label:"Parent style"`
}

func (r *BeerStyleRow) Key() string { return identity.Slug(r.Name) }

func (r *BeerStyleRow) Model() any {
	return &schema.BeerStyle{
		ID:            r.Key(),
		Name:          r.Name,
		Description:   r.Description,
		OriginID:      r.OriginID,
		ParentStyleID: r.ParentStyleID,
	}
}

// SpiritTypeRow is keyed by the slug of its name.
type SpiritTypeRow struct {
	Name        string  `json:"name" label:"Name" validate:"required"`
	Description *string `json:"description,omitempty" label:"Description"`
}

func (r *SpiritTypeRow) Key() string { return identity.Slug(r.Name) }

func (r *SpiritTypeRow) Model() any {
	return &schema.SpiritType{ID: r.Key(), Name: r.Name, Description: r.Description}
}

// SpiritAgingContainerRow is keyed by the slug of its name.
type SpiritAgingContainerRow struct {
	Name string `json:"name" label:"Name" validate:"required"`
}

func (r *SpiritAgingContainerRow) Key() string { return identity.Slug(r.Name) }

func (r *SpiritAgingContainerRow) Model() any {
	return &schema.SpiritAgingContainer{ID: r.Key(), Name: r.Name}
}
