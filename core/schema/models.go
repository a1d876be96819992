package schema

import "time"

// Country is a reference country.
type Country struct {
	ID      string `gorm:"primaryKey;size:64" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	ISOCode string `gorm:"column:iso_code;size:8;not null" json:"isoCode"`
}

func (Country) TableName() string { return "countries" }

// Origin is a region inside a country.
type Origin struct {
	ID        string   `gorm:"primaryKey;size:64" json:"id"`
	CountryID string   `gorm:"size:64;not null;index" json:"countryId"`
	Region    *string  `gorm:"size:255" json:"region"`
	Country   *Country `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Origin) TableName() string { return "origins" }

type Brand struct {
	ID       string  `gorm:"primaryKey;size:64" json:"id"`
	Name     string  `gorm:"size:255;not null" json:"name"`
	OriginID string  `gorm:"size:64;not null;index" json:"originId"`
	Website  string  `gorm:"size:512" json:"website"`
	Origin   *Origin `gorm:"foreignKey:OriginID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Brand) TableName() string { return "brands" }

type Category struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

func (Category) TableName() string { return "categories" }

type Packaging struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

func (Packaging) TableName() string { return "packaging" }

// Drink is the category independent product record.
type Drink struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"size:255;not null;index:idx_drinks_lookup" json:"name"`
	BrandID         string    `gorm:"size:64;not null;index:idx_drinks_lookup" json:"brandId"`
	AlcoholByVolume float64   `gorm:"not null" json:"alcoholByVolume"`
	CategoryID      string    `gorm:"size:64;not null" json:"categoryId"`
	OriginID        *string   `gorm:"size:64" json:"originId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Brand           *Brand    `gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT" json:"-"`
	Category        *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
	Origin          *Origin   `gorm:"foreignKey:OriginID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Drink) TableName() string { return "drinks" }

// DrinkFormat is one sellable packaging and volume of a drink.
type DrinkFormat struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	DrinkID     string     `gorm:"size:36;not null;index:idx_formats_drink" json:"drinkId"`
	PackagingID string     `gorm:"size:64;not null;index:idx_formats_drink" json:"packagingId"`
	VolumeCc    int        `gorm:"not null;index:idx_formats_drink" json:"volumeCc"`
	Drink       *Drink     `gorm:"foreignKey:DrinkID;constraint:OnDelete:RESTRICT" json:"-"`
	Packaging   *Packaging `gorm:"foreignKey:PackagingID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (DrinkFormat) TableName() string { return "drink_formats" }

type BeerStyle struct {
	ID            string     `gorm:"primaryKey;size:128" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Description   *string    `gorm:"type:text" json:"description"`
	OriginID      string     `gorm:"size:64;not null" json:"originId"`
	ParentStyleID *string    `gorm:"size:128" json:"parentStyleId"`
	Origin        *Origin    `gorm:"foreignKey:OriginID;constraint:OnDelete:RESTRICT" json:"-"`
	ParentStyle   *BeerStyle `gorm:"foreignKey:ParentStyleID;constraint:OnDelete:SET NULL" json:"-"`
}

func (BeerStyle) TableName() string { return "beer_styles" }

// Beer is the beer detail of a drink, keyed by the drink id.
type Beer struct {
	DrinkID         string     `gorm:"primaryKey;size:36" json:"drinkId"`
	BeerStyleID     string     `gorm:"size:128;not null" json:"beerStyleId"`
	IBU             *float64   `gorm:"column:ibu" json:"ibu"`
	ServingTempMinC *float64   `gorm:"column:serving_temp_min_c" json:"servingTempMinC"`
	ServingTempMaxC *float64   `gorm:"column:serving_temp_max_c" json:"servingTempMaxC"`
	Drink           *Drink     `gorm:"foreignKey:DrinkID;constraint:OnDelete:RESTRICT" json:"-"`
	BeerStyle       *BeerStyle `gorm:"foreignKey:BeerStyleID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Beer) TableName() string { return "beers" }

// BeerIdentity reserves a beer identity hash.
type BeerIdentity struct {
	Hash string `gorm:"primaryKey;size:64"`
}

func (BeerIdentity) TableName() string { return "unique_beer_identities" }

type SpiritType struct {
	ID          string  `gorm:"primaryKey;size:128" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

func (SpiritType) TableName() string { return "spirit_types" }

type SpiritAgingContainer struct {
	ID   string `gorm:"primaryKey;size:128" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

func (SpiritAgingContainer) TableName() string { return "spirit_aging_containers" }

// Spirit is the spirit detail of a drink, keyed by the drink id.
type Spirit struct {
	DrinkID          string                `gorm:"primaryKey;size:36" json:"drinkId"`
	SpiritTypeID     string                `gorm:"size:128;not null" json:"spiritTypeId"`
	AgingContainerID *string               `gorm:"size:128" json:"agingContainerId"`
	AgingTimeMonths  *int                  `json:"agingTimeMonths"`
	Drink            *Drink                `gorm:"foreignKey:DrinkID;constraint:OnDelete:RESTRICT" json:"-"`
	SpiritType       *SpiritType           `gorm:"foreignKey:SpiritTypeID;constraint:OnDelete:RESTRICT" json:"-"`
	AgingContainer   *SpiritAgingContainer `gorm:"foreignKey:AgingContainerID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Spirit) TableName() string { return "spirits" }

// SpiritIdentity reserves a spirit identity hash.
type SpiritIdentity struct {
	Hash string `gorm:"primaryKey;size:64"`
}

func (SpiritIdentity) TableName() string { return "unique_spirit_identities" }
