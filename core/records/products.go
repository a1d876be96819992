package records

import (
	"drinks-api/core/identity"
	"drinks-api/core/schema"
)

// BeerRecord is a beer submission.
type BeerRecord struct {
	Name            string   `json:"name" label:"Name" validate:"required"`
	BrandID         string   `json:"brandId" label:"Brand" validate:"required"`
	AlcoholByVolume *float64 `json:"alcoholByVolume" label:"Alcohol by volume" validate:"required,gte=0,lte=100"`
	CategoryID      string   `json:"categoryId" label:"Category" validate:"required"`
	OriginID        *string  `json:"originId,omitempty" label:"Origin"`
	PackagingID     string   `json:"packagingId" label:"Packaging" validate:"required"`
	VolumeCc        *int     `json:"volumeCc" label:"Volume" validate:"required,gte=0"`
	BeerStyleID     string   `json:"beerStyleId" label:"Beer style" validate:"required"`
	IBU             *float64 `json:"ibu,omitempty" label:"IBU" validate:"omitempty,gte=0,lte=100"`
	ServingTempMinC *float64 `json:"servingTempMinC,omitempty" label:"Minimum serving temperature"`
	ServingTempMaxC *float64 `json:"servingTempMaxC,omitempty" label:"Maximum serving temperature"`
}

func (r *BeerRecord) IdentityInput() identity.Input {
	return identity.Input{
		Name:        r.Name,
		BrandID:     r.BrandID,
		ABV:         deref(r.AlcoholByVolume),
		CategoryID:  r.CategoryID,
		PackagingID: r.PackagingID,
		VolumeCc:    deref(r.VolumeCc),
		TypeID:      r.BeerStyleID,
	}
}

func (r *BeerRecord) DrinkModel(id string) *schema.Drink {
	return &schema.Drink{
		ID:              id,
		Name:            r.Name,
		BrandID:         r.BrandID,
		AlcoholByVolume: deref(r.AlcoholByVolume),
		CategoryID:      r.CategoryID,
		OriginID:        r.OriginID,
	}
}

func (r *BeerRecord) FormatModel(id, drinkID string) *schema.DrinkFormat {
	return &schema.DrinkFormat{ID: id, DrinkID: drinkID, PackagingID: r.PackagingID, VolumeCc: deref(r.VolumeCc)}
}

func (r *BeerRecord) DetailModel(drinkID string) *schema.Beer {
	return &schema.Beer{
		DrinkID:         drinkID,
		BeerStyleID:     r.BeerStyleID,
		IBU:             r.IBU,
		ServingTempMinC: r.ServingTempMinC,
		ServingTempMaxC: r.ServingTempMaxC,
	}
}

// SpiritRecord is a spirit submission.
type SpiritRecord struct {
	Name             string   `json:"name" label:"Name" validate:"required"`
	BrandID          string   `json:"brandId" label:"Brand" validate:"required"`
	AlcoholByVolume  *float64 `json:"alcoholByVolume" label:"Alcohol by volume" validate:"required,gte=0,lte=100"`
	CategoryID       string   `json:"categoryId" label:"Category" validate:"required"`
	OriginID         *string  `json:"originId,omitempty" label:"Origin"`
	PackagingID      string   `json:"packagingId" label:"Packaging" validate:"required"`
	VolumeCc         *int     `json:"volumeCc" label:"Volume" validate:"required,gte=0"`
	SpiritTypeID     string   `json:"spiritTypeId" label:"Spirit type" validate:"required"`
	AgingContainerID *string  `json:"agingContainerId,omitempty" label:"Aging container"`
	AgingTimeMonths  *int     `json:"agingTimeMonths,omitempty" label:"Aging time" validate:"omitempty,gte=0"`
}

func (r *SpiritRecord) IdentityInput() identity.Input {
	return identity.Input{
		Name:        r.Name,
		BrandID:     r.BrandID,
		ABV:         deref(r.AlcoholByVolume),
		CategoryID:  r.CategoryID,
		PackagingID: r.PackagingID,
		VolumeCc:    deref(r.VolumeCc),
		TypeID:      r.SpiritTypeID,
	}
}

func (r *SpiritRecord) DrinkModel(id string) *schema.Drink {
	return &schema.Drink{
		ID:              id,
		Name:            r.Name,
		BrandID:         r.BrandID,
		AlcoholByVolume: deref(r.AlcoholByVolume),
		CategoryID:      r.CategoryID,
		OriginID:        r.OriginID,
	}
}

func (r *SpiritRecord) FormatModel(id, drinkID string) *schema.DrinkFormat {
	return &schema.DrinkFormat{ID: id, DrinkID: drinkID, PackagingID: r.PackagingID, VolumeCc: deref(r.VolumeCc)}
}

func (r *SpiritRecord) DetailModel(drinkID string) *schema.Spirit {
	return &schema.Spirit{
		DrinkID:          drinkID,
		SpiritTypeID:     r.SpiritTypeID,
		AgingContainerID: r.AgingContainerID,
		AgingTimeMonths:  r.AgingTimeMonths,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
