// Package reconcile turns a validated product submission into catalog rows.
//
// A submission is identified by its identity hash (see core/identity). The Engine
// reserves that hash, looks for an existing product that matches the submission exactly,
// creates the product and its category detail when none matches, and records the
// sellable format. Category specific storage (beer vs spirit detail tables, identity
// tables, lookup joins) lives behind the Adapter interface.
//
// # Paths
//
// Reconcile is the interactive path: a reservation that already exists means the exact
// format was submitted before and the call fails with ErrDuplicateIdentity without writing
// anything. Upsert is the bulk path: the reservation is insert-or-ignore, matched products
// and details are overwritten with the submitted values and a format is only added when
// the product has none with the same packaging and volume.
//
// # Compensation
//
// Writes are not wrapped in a transaction. On the interactive path every successful write
// is appended to a Compensator, and on failure the log is undone in reverse order: format,
// detail, product, reservation. Only rows created by the failing call are removed; a
// product that was found and reused is never deleted. A product created by the failing
// call that another call has attached a format to in the meantime is kept: its detail is
// left alone and the product delete is refused by the foreign key. Compensation failures
// are logged and combined, but the caller always receives the error that triggered the
// rollback.
//
// The bulk path does not compensate. Its writes are idempotent upserts, so a failed row
// leaves rows the next import converges on.
//
// # Usage
//
//	engine := reconcile.NewEngine(db, log)
//	res, err := engine.Reconcile(ctx, reconcile.BeerAdapter{}, rec)
//	if errors.Is(err, reconcile.ErrDuplicateIdentity) {
//	    // 409
//	}
package reconcile
