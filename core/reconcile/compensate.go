package reconcile

import (
	"context"
	"fmt"

	"drinks-api/core/schema"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Compensator keeps the ordered log of writes applied by one reconciliation.
type Compensator struct {
	db      *gorm.DB
	adapter Adapter
	logger  *zap.Logger
	actions []Action
}

// NewCompensator creates an empty compensation log.
func NewCompensator(db *gorm.DB, adapter Adapter, logger *zap.Logger) *Compensator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compensator{db: db, adapter: adapter, logger: logger}
}

// Record appends the undo action of a write that has succeeded. Recording on a nil
// Compensator is a no-op.
func (c *Compensator) Record(t ActionType, key string) {
	if c == nil {
		return
	}
	c.actions = append(c.actions, Action{Type: t, Key: key})
}

// Actions returns the recorded log in application order.
func (c *Compensator) Actions() []Action {
	return append([]Action(nil), c.actions...)
}

// Rollback undoes the recorded writes in reverse order and clears the log.
// Every action is attempted; failures are logged with cause and returned combined.
// The rollback ignores cancellation of ctx so a dropped client cannot leave orphans.
func (c *Compensator) Rollback(ctx context.Context, cause error) error {
	if len(c.actions) == 0 {
		return nil
	}
	ctx = context.WithoutCancel(ctx)
	db := c.db.WithContext(ctx)

	var errs error
	for i := len(c.actions) - 1; i >= 0; i-- {
		action := c.actions[i]
		if err := c.undo(db, action); err != nil {
			c.logger.Error("Compensating action failed",
				zap.String("adapter", c.adapter.Name()),
				zap.String("action", string(action.Type)),
				zap.String("key", action.Key),
				zap.NamedError("cause", cause),
				zap.Error(err),
			)
			errs = multierr.Append(errs, fmt.Errorf("%s %s: %w", action.Type, action.Key, err))
		}
	}
	c.actions = nil
	return errs
}

func (c *Compensator) undo(db *gorm.DB, action Action) error {
	switch action.Type {
	case ActionDeleteFormat:
		return db.Where("id = ?", action.Key).Delete(&schema.DrinkFormat{}).Error
	case ActionDeleteDetail:
		// a concurrent call may have attached its own format to the product in the meantime
		return db.Where("drink_id = ? AND NOT EXISTS (SELECT 1 FROM drink_formats WHERE drink_formats.drink_id = ?)", action.Key, action.Key).
			Delete(c.adapter.DetailModel()).Error
	case ActionDeleteProduct:
		return db.Where("id = ?", action.Key).Delete(&schema.Drink{}).Error
	case ActionReleaseReservation:
		return db.Where("hash = ?", action.Key).Delete(c.adapter.ReservationModel()).Error
	default:
		return fmt.Errorf("unknown action type %q", action.Type)
	}
}
