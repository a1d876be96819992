package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Adapter defines the category specific storage of a product kind (beer, spirit).
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "beers", "spirits").
	Name() string

	// Entity returns the singular display name used in user facing messages (e.g., "Beer").
	Entity() string

	// NewReservation returns the identity row model for hash.
	NewReservation(hash string) any

	// ReservationModel returns an empty identity row model, used for deletes.
	ReservationModel() any

	// FindProduct returns the id of a drink whose name, brand, ABV, category and type id
	// match rec exactly. Matching is case sensitive and ignores packaging and volume.
	FindProduct(ctx context.Context, db *gorm.DB, rec Product) (id string, found bool, err error)

	// InsertDetail creates the category detail row of drinkID.
	InsertDetail(ctx context.Context, db *gorm.DB, rec Product, drinkID string) error

	// UpsertDetail creates or overwrites the category detail row of drinkID.
	UpsertDetail(ctx context.Context, db *gorm.DB, rec Product, drinkID string) error

	// DetailModel returns an empty detail row model, used for deletes.
	DetailModel() any
}
