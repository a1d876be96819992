package reconcile

import (
	"context"
	"fmt"

	"drinks-api/core/records"
	"drinks-api/core/schema"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpiritAdapter stores spirits in the spirits and unique_spirit_identities tables.
type SpiritAdapter struct{}

var _ Adapter = SpiritAdapter{}

func (SpiritAdapter) Name() string   { return "spirits" }
func (SpiritAdapter) Entity() string { return "Spirit" }

func (SpiritAdapter) NewReservation(hash string) any { return &schema.SpiritIdentity{Hash: hash} }
func (SpiritAdapter) ReservationModel() any          { return &schema.SpiritIdentity{} }
func (SpiritAdapter) DetailModel() any               { return &schema.Spirit{} }

func (SpiritAdapter) FindProduct(ctx context.Context, db *gorm.DB, rec Product) (string, bool, error) {
	spirit, err := asSpirit(rec)
	if err != nil {
		return "", false, err
	}
	return findProduct(ctx, db, rec,
		"JOIN spirits ON spirits.drink_id = drinks.id",
		"spirits.spirit_type_id = ?", spirit.SpiritTypeID)
}

func (SpiritAdapter) InsertDetail(ctx context.Context, db *gorm.DB, rec Product, drinkID string) error {
	spirit, err := asSpirit(rec)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(spirit.DetailModel(drinkID)).Error
}

func (SpiritAdapter) UpsertDetail(ctx context.Context, db *gorm.DB, rec Product, drinkID string) error {
	spirit, err := asSpirit(rec)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "drink_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"spirit_type_id", "aging_container_id", "aging_time_months"}),
	}).Create(spirit.DetailModel(drinkID)).Error
}

func asSpirit(rec Product) (*records.SpiritRecord, error) {
	spirit, ok := rec.(*records.SpiritRecord)
	if !ok {
		return nil, fmt.Errorf("spirit adapter cannot handle %T", rec)
	}
	return spirit, nil
}
