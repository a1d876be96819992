package ingest

import (
	"context"
	"fmt"

	"drinks-api/core/database"
	"drinks-api/core/reconcile"
	"drinks-api/core/records"
	"drinks-api/core/validation"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Status classifies the outcome of a single record submission.
type Status int

const (
	StatusCreated Status = iota + 1
	StatusInvalid
	StatusDuplicate
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusInvalid:
		return "invalid"
	case StatusDuplicate:
		return "duplicate"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of Submit or SubmitCatalog.
type Outcome struct {
	Status Status
	// Result is set for created products.
	Result *reconcile.Result
	// Row is the stored model of a created catalog row.
	Row any
	// Errors lists field failures of an invalid submission.
	Errors validation.FieldErrors
	// Message is the user facing summary of a non created outcome.
	Message string
	// Err is the internal cause of a failed outcome. It is never shown to callers.
	Err error
}

func failed(err error) *Outcome {
	return &Outcome{Status: StatusFailed, Message: "Internal server error", Err: err}
}

// Submit validates and reconciles one product. Duplicates are reported, never merged.
func (i *Importer) Submit(ctx context.Context, kind SheetKind, raw map[string]any) *Outcome {
	ctx, span := i.tracer.Start(ctx, "ingest.Submit", trace.WithAttributes(attribute.String("kind", kind.String())))
	defer span.End()

	if !kind.IsProduct() {
		return failed(fmt.Errorf("%s is not a product kind", kind))
	}

	rec, ferrs := kind.Decode(raw)
	if len(ferrs) > 0 {
		return &Outcome{Status: StatusInvalid, Errors: ferrs, Message: ferrs.Summary()}
	}
	if out := i.checkReferences(ctx, kind, raw); out != nil {
		return out
	}

	res, err := i.engine.Reconcile(ctx, kind.Adapter(), rec.(reconcile.Product))
	switch {
	case reconcile.IsDuplicate(err):
		return &Outcome{Status: StatusDuplicate, Message: kind.Entity() + " already exists"}
	case database.IsForeignKeyViolation(err):
		return i.missingParent(ctx, kind, raw)
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "reconcile")
		return failed(err)
	}

	span.SetAttributes(attribute.String("hash", res.Hash), attribute.Bool("product_created", res.ProductCreated))
	return &Outcome{Status: StatusCreated, Result: res}
}

// SubmitCatalog inserts one reference catalog row. An existing id is a duplicate.
func (i *Importer) SubmitCatalog(ctx context.Context, kind SheetKind, raw map[string]any) *Outcome {
	ctx, span := i.tracer.Start(ctx, "ingest.SubmitCatalog", trace.WithAttributes(attribute.String("kind", kind.String())))
	defer span.End()

	if kind.IsProduct() {
		return failed(fmt.Errorf("%s is not a catalog kind", kind))
	}

	rec, ferrs := kind.Decode(raw)
	if len(ferrs) > 0 {
		return &Outcome{Status: StatusInvalid, Errors: ferrs, Message: ferrs.Summary()}
	}
	if out := i.checkReferences(ctx, kind, raw); out != nil {
		return out
	}

	model := rec.(records.CatalogRow).Model()
	err := i.db.WithContext(ctx).Create(model).Error
	switch {
	case database.IsUniqueViolation(err):
		return &Outcome{Status: StatusDuplicate, Message: kind.Entity() + " already exists"}
	case database.IsForeignKeyViolation(err):
		return i.missingParent(ctx, kind, raw)
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert")
		return failed(err)
	}
	return &Outcome{Status: StatusCreated, Row: model}
}

// missingParent explains a foreign key violation raised by storage after the reference
// check passed, which happens when a parent row is removed in between.
func (i *Importer) missingParent(ctx context.Context, kind SheetKind, raw map[string]any) *Outcome {
	if out := i.checkReferences(ctx, kind, raw); out != nil && out.Status == StatusInvalid {
		return out
	}
	return &Outcome{Status: StatusInvalid, Message: "Referenced row does not exist"}
}

func (i *Importer) checkReferences(ctx context.Context, kind SheetKind, raw map[string]any) *Outcome {
	refs := kind.References()
	snap, err := i.loader.LoadFor(ctx, raw, refs)
	if err != nil {
		return failed(err)
	}
	refErrs := validation.CheckReferences(0, raw, refs, snap)
	if len(refErrs) == 0 {
		return nil
	}

	errs := make(validation.FieldErrors, 0, len(refErrs))
	for _, e := range refErrs {
		errs = append(errs, validation.FieldError{
			Field:   e.Field,
			Value:   e.Value,
			Message: entityOfTable(e.Table) + " does not exist",
		})
	}
	return &Outcome{Status: StatusInvalid, Errors: errs, Message: errs[0].Message}
}
