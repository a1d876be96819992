package reconcile

import (
	"context"
	"fmt"

	"drinks-api/core/records"
	"drinks-api/core/schema"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BeerAdapter stores beers in the beers and unique_beer_identities tables.
type BeerAdapter struct{}

var _ Adapter = BeerAdapter{}

func (BeerAdapter) Name() string   { return "beers" }
func (BeerAdapter) Entity() string { return "Beer" }

func (BeerAdapter) NewReservation(hash string) any { return &schema.BeerIdentity{Hash: hash} }
func (BeerAdapter) ReservationModel() any          { return &schema.BeerIdentity{} }
func (BeerAdapter) DetailModel() any               { return &schema.Beer{} }

func (BeerAdapter) FindProduct(ctx context.Context, db *gorm.DB, rec Product) (string, bool, error) {
	beer, err := asBeer(rec)
	if err != nil {
		return "", false, err
	}
	return findProduct(ctx, db, rec,
		"JOIN beers ON beers.drink_id = drinks.id",
		"beers.beer_style_id = ?", beer.BeerStyleID)
}

func (BeerAdapter) InsertDetail(ctx context.Context, db *gorm.DB, rec Product, drinkID string) error {
	beer, err := asBeer(rec)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(beer.DetailModel(drinkID)).Error
}

func (BeerAdapter) UpsertDetail(ctx context.Context, db *gorm.DB, rec Product, drinkID string) error {
	beer, err := asBeer(rec)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "drink_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"beer_style_id", "ibu", "serving_temp_min_c", "serving_temp_max_c"}),
	}).Create(beer.DetailModel(drinkID)).Error
}

func asBeer(rec Product) (*records.BeerRecord, error) {
	beer, ok := rec.(*records.BeerRecord)
	if !ok {
		return nil, fmt.Errorf("beer adapter cannot handle %T", rec)
	}
	return beer, nil
}

// findProduct runs the exact-match drink lookup shared by all categories.
func findProduct(ctx context.Context, db *gorm.DB, rec Product, join, detailCond string, detailArg any) (string, bool, error) {
	in := rec.IdentityInput()
	var ids []string
	err := db.WithContext(ctx).
		Model(&schema.Drink{}).
		Joins(join).
		Where("drinks.name = ? AND drinks.brand_id = ? AND drinks.alcohol_by_volume = ? AND drinks.category_id = ?",
			in.Name, in.BrandID, in.ABV, in.CategoryID).
		Where(detailCond, detailArg).
		Order("drinks.created_at").
		Limit(1).
		Pluck("drinks.id", &ids).Error
	if err != nil {
		return "", false, err
	}
	if len(ids) == 0 {
		return "", false, nil
	}
	return ids[0], true, nil
}
