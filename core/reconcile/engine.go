package reconcile

import (
	"context"
	"errors"
	"fmt"

	"drinks-api/core/database"
	"drinks-api/core/identity"
	"drinks-api/core/schema"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Engine reconciles product submissions against the catalog.
type Engine struct {
	db     *gorm.DB
	logger *zap.Logger
	newID  func() (string, error)
}

// NewEngine creates an engine writing through db.
func NewEngine(db *gorm.DB, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{db: db, logger: logger, newID: newV7}
}

func newV7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Reconcile runs the interactive path: reserve the identity, reuse or create the
// product with its detail, then add the format. A reserved hash fails with
// ErrDuplicateIdentity before any other write.
func (e *Engine) Reconcile(ctx context.Context, adapter Adapter, rec Product) (*Result, error) {
	hash := identity.Hash(rec.IdentityInput())
	db := e.db.WithContext(ctx)

	if err := db.Create(adapter.NewReservation(hash)).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("failed to reserve %s identity: %w", adapter.Name(), err)
	}

	comp := NewCompensator(e.db, adapter, e.logger)
	comp.Record(ActionReleaseReservation, hash)
	res := &Result{Hash: hash, Reserved: true}

	if err := e.attach(ctx, db, adapter, rec, res, comp, false); err != nil {
		_ = comp.Rollback(ctx, err)
		return nil, err
	}
	return res, nil
}

// Upsert runs the bulk path. Re-running it with the same submission converges on the
// same rows: the reservation and format are only inserted when missing and a matched
// product has its fields overwritten. A failing call is not compensated; the rows it
// already wrote stay and the next run picks them up.
func (e *Engine) Upsert(ctx context.Context, adapter Adapter, rec Product) (*Result, error) {
	hash := identity.Hash(rec.IdentityInput())
	db := e.db.WithContext(ctx)

	tx := db.Clauses(clause.OnConflict{DoNothing: true}).Create(adapter.NewReservation(hash))
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to reserve %s identity: %w", adapter.Name(), tx.Error)
	}

	res := &Result{Hash: hash, Reserved: tx.RowsAffected > 0}
	if err := e.attach(ctx, db, adapter, rec, res, nil, true); err != nil {
		return nil, err
	}
	return res, nil
}

// attach resolves the product and records the format into res. Writes are logged to
// comp when it is not nil.
func (e *Engine) attach(ctx context.Context, db *gorm.DB, adapter Adapter, rec Product, res *Result, comp *Compensator, upsert bool) error {
	productID, found, err := adapter.FindProduct(ctx, db, rec)
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", adapter.Name(), err)
	}

	switch {
	case found && upsert:
		if err := upsertDrink(db, rec.DrinkModel(productID)); err != nil {
			return fmt.Errorf("failed to update drink %s: %w", productID, err)
		}
		if err := adapter.UpsertDetail(ctx, db, rec, productID); err != nil {
			return fmt.Errorf("failed to update %s detail %s: %w", adapter.Name(), productID, err)
		}
	case !found:
		if productID, err = e.newID(); err != nil {
			return fmt.Errorf("failed to generate drink id: %w", err)
		}
		if err := db.Create(rec.DrinkModel(productID)).Error; err != nil {
			return fmt.Errorf("failed to insert drink: %w", err)
		}
		comp.Record(ActionDeleteProduct, productID)
		res.ProductCreated = true

		if err := adapter.InsertDetail(ctx, db, rec, productID); err != nil {
			return fmt.Errorf("failed to insert %s detail: %w", adapter.Name(), err)
		}
		comp.Record(ActionDeleteDetail, productID)
	}
	res.ProductID = productID

	format := rec.FormatModel("", productID)
	if upsert {
		var ids []string
		err := db.Model(&schema.DrinkFormat{}).
			Where("drink_id = ? AND packaging_id = ? AND volume_cc = ?", format.DrinkID, format.PackagingID, format.VolumeCc).
			Limit(1).
			Pluck("id", &ids).Error
		if err != nil {
			return fmt.Errorf("failed to look up format: %w", err)
		}
		if len(ids) > 0 {
			res.FormatID = ids[0]
			return nil
		}
	}

	if format.ID, err = e.newID(); err != nil {
		return fmt.Errorf("failed to generate format id: %w", err)
	}
	if err := db.Create(format).Error; err != nil {
		return fmt.Errorf("failed to insert format: %w", err)
	}
	comp.Record(ActionDeleteFormat, format.ID)
	res.FormatID = format.ID
	res.FormatCreated = true
	return nil
}

func upsertDrink(db *gorm.DB, drink *schema.Drink) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "brand_id", "alcohol_by_volume", "category_id", "origin_id", "updated_at"}),
	}).Create(drink).Error
}

// IsDuplicate reports whether err means the submission already exists.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateIdentity) || database.IsUniqueViolation(err)
}
