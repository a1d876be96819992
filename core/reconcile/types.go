package reconcile

import (
	"errors"

	"drinks-api/core/identity"
	"drinks-api/core/schema"
)

// ErrDuplicateIdentity is returned when the identity hash of a submission is already reserved.
var ErrDuplicateIdentity = errors.New("identity already reserved")

// Product is a validated product submission.
type Product interface {
	IdentityInput() identity.Input
	DrinkModel(id string) *schema.Drink
	FormatModel(id, drinkID string) *schema.DrinkFormat
}

// Result describes the rows a reconciliation touched.
type Result struct {
	// Hash is the identity hash of the submission.
	Hash string `json:"hash"`

	// ProductID is the drink the format was attached to.
	ProductID string `json:"productId"`

	// FormatID is the format row created or matched for the submission.
	FormatID string `json:"formatId"`

	// ProductCreated is false when an existing product was reused.
	ProductCreated bool `json:"-"`

	// FormatCreated is false when the bulk path found the format already present.
	FormatCreated bool `json:"-"`

	// Reserved is false when the bulk path found the hash already reserved.
	Reserved bool `json:"-"`
}

// ActionType represents the kind of compensating action.
type ActionType string

const (
	// ActionReleaseReservation deletes a reserved identity hash.
	ActionReleaseReservation ActionType = "release_reservation"
	// ActionDeleteProduct deletes a created drink.
	ActionDeleteProduct ActionType = "delete_product"
	// ActionDeleteDetail deletes a created category detail.
	ActionDeleteDetail ActionType = "delete_detail"
	// ActionDeleteFormat deletes a created format.
	ActionDeleteFormat ActionType = "delete_format"
)

// Action undoes one applied write.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the hash or row id the action targets.
	Key string `json:"key"`
}
