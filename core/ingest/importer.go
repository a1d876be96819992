package ingest

import (
	"context"
	"fmt"
	"strings"

	"drinks-api/core/database"
	"drinks-api/core/reconcile"
	"drinks-api/core/records"
	"drinks-api/core/validation"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const tracerName = "drinks-api/core/ingest"

// ProgressFunc is called after each row of a sheet has been handled.
type ProgressFunc func(sheet string, done, total int)

// Importer orchestrates batch and single record ingestion.
type Importer struct {
	db     *gorm.DB
	engine *reconcile.Engine
	loader *SnapshotLoader
	logger *zap.Logger
	tracer trace.Tracer
}

// NewImporter creates an importer writing through db.
func NewImporter(db *gorm.DB, cfg Config, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{
		db:     db,
		engine: reconcile.NewEngine(db, logger),
		loader: NewSnapshotLoader(db, cfg.MaxReferenceRows),
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// ImportProducts imports every sheet except VALUES as rows of a product kind.
func (i *Importer) ImportProducts(ctx context.Context, kind SheetKind, sheets []Sheet, progress ProgressFunc) (*Report, error) {
	if !kind.IsProduct() {
		return nil, fmt.Errorf("%s is not a product kind", kind)
	}
	report := newReport()
	for _, sheet := range sheets {
		if strings.EqualFold(sheet.Name, ValuesSheet) {
			continue
		}
		i.ImportSheet(ctx, kind, sheet, report, progress)
	}
	return report, nil
}

// ImportCatalog imports reference catalog sheets, matched to kinds by sheet name and
// processed parents first whatever their order in the workbook.
func (i *Importer) ImportCatalog(ctx context.Context, sheets []Sheet, progress ProgressFunc) *Report {
	byKind := make(map[SheetKind][]Sheet)
	for _, sheet := range sheets {
		kind, ok := ParseSheetKind(sheet.Name)
		if !ok || kind.IsProduct() {
			i.logger.Warn("Skipping unknown catalog sheet", zap.String("sheet", sheet.Name))
			continue
		}
		byKind[kind] = append(byKind[kind], sheet)
	}

	report := newReport()
	for _, kind := range CatalogKinds() {
		for _, sheet := range byKind[kind] {
			i.ImportSheet(ctx, kind, sheet, report, progress)
		}
	}
	return report
}

type validRow struct {
	line int
	rec  any
}

// ImportSheet validates every row of sheet, then applies the valid ones in order.
// Row failures are appended to report; nothing aborts the sheet except cancellation
// of ctx or a reference snapshot that cannot be loaded.
func (i *Importer) ImportSheet(ctx context.Context, kind SheetKind, sheet Sheet, report *Report, progress ProgressFunc) {
	ctx, span := i.tracer.Start(ctx, "ingest.ImportSheet", trace.WithAttributes(
		attribute.String("sheet", sheet.Name),
		attribute.String("kind", kind.String()),
		attribute.Int("rows", len(sheet.Rows)),
	))
	defer span.End()

	report.Stats.Sheets++
	report.Stats.Rows += len(sheet.Rows)
	errsBefore := len(report.Errors)

	refs := kind.References()
	snap, err := i.loader.Load(ctx, validation.Tables(refs))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "snapshot")
		report.add(sheet.Name, 0, "Failed to load reference data: "+err.Error())
		report.Stats.Rejected += len(sheet.Rows)
		return
	}

	valid := make([]validRow, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		rec, ferrs := kind.Decode(row.Values)
		if len(ferrs) > 0 {
			report.add(sheet.Name, row.Line, ferrs.Summary())
			report.Stats.Rejected++
			continue
		}
		if refErrs := validation.CheckReferences(row.Line, row.Values, refs, snap); len(refErrs) > 0 {
			for _, e := range refErrs {
				report.add(sheet.Name, e.Row, e.Error())
			}
			report.Stats.Rejected++
			continue
		}
		if kind.selfReferencing() {
			snap.Add(kind.Table(), rec.(records.CatalogRow).Key())
		}
		valid = append(valid, validRow{line: row.Line, rec: rec})
	}

	done := len(sheet.Rows) - len(valid)
	if progress != nil && done > 0 {
		progress(sheet.Name, done, len(sheet.Rows))
	}

	for _, v := range valid {
		if err := ctx.Err(); err != nil {
			report.add(sheet.Name, 0, "Import cancelled: "+err.Error())
			span.SetStatus(codes.Error, "cancelled")
			break
		}
		created, err := i.apply(ctx, kind, v.rec)
		if err != nil {
			report.add(sheet.Name, v.line, rowFailure(err))
			report.Stats.Rejected++
			i.logger.Debug("Row rejected by storage",
				zap.String("sheet", sheet.Name), zap.Int("row", v.line), zap.Error(err))
		} else {
			report.Stats.Applied++
			if created {
				report.Stats.Created++
			}
		}
		done++
		if progress != nil {
			progress(sheet.Name, done, len(sheet.Rows))
		}
	}

	i.logger.Info("Sheet imported",
		zap.String("sheet", sheet.Name),
		zap.String("kind", kind.String()),
		zap.Int("rows", len(sheet.Rows)),
		zap.Int("errors", len(report.Errors)-errsBefore),
	)
}

func (i *Importer) apply(ctx context.Context, kind SheetKind, rec any) (bool, error) {
	if kind.IsProduct() {
		res, err := i.engine.Upsert(ctx, kind.Adapter(), rec.(reconcile.Product))
		if err != nil {
			return false, err
		}
		return res.FormatCreated, nil
	}

	row := rec.(records.CatalogRow)
	tx := i.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(kind.upsertColumns()),
	}).Create(row.Model())
	return false, tx.Error
}

func rowFailure(err error) string {
	if database.IsForeignKeyViolation(err) {
		return "Foreign key error: " + err.Error()
	}
	return "Database error: " + err.Error()
}

// entityOfTable names the kind stored in table, for "does not exist" messages.
func entityOfTable(table string) string {
	for _, k := range CatalogKinds() {
		if k.Table() == table {
			return k.Entity()
		}
	}
	return table
}
