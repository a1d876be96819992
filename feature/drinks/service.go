package drinks

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"drinks-api/core/ingest"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TargetCatalog names reference catalog workbooks; product workbooks use the kind name.
const TargetCatalog = "catalog"

var (
	// ErrUnknownTarget is returned for import targets other than beers, spirits or catalog.
	ErrUnknownTarget = errors.New("unknown import target")
	// ErrInvalidWorkbook wraps files that cannot be parsed as spreadsheets.
	ErrInvalidWorkbook = errors.New("invalid workbook")
	// ErrArchiveDisabled is returned by archive reads when no object storage is configured.
	ErrArchiveDisabled = errors.New("import archive is not configured")
)

// ImportResult is the outcome of a workbook import.
type ImportResult struct {
	Report *ingest.Report
	// ArchiveID is set when the workbook was archived.
	ArchiveID string
}

// Service handles catalog ingestion for HTTP and CLI callers.
type Service struct {
	importer *ingest.Importer
	exporter *ingest.Exporter
	archiver *ingest.Archiver
	cfg      ingest.Config
	logger   *zap.Logger
}

// NewService creates a new drinks service. archiver may be nil.
func NewService(db *gorm.DB, archiver *ingest.Archiver, cfg ingest.Config, logger *zap.Logger) *Service {
	return &Service{
		importer: ingest.NewImporter(db, cfg, logger),
		exporter: ingest.NewExporter(db),
		archiver: archiver,
		cfg:      cfg,
		logger:   logger,
	}
}

// Submit ingests one product.
func (s *Service) Submit(ctx context.Context, kind ingest.SheetKind, raw map[string]any) *ingest.Outcome {
	return s.importer.Submit(ctx, kind, raw)
}

// SubmitCatalog inserts one reference catalog row.
func (s *Service) SubmitCatalog(ctx context.Context, kind ingest.SheetKind, raw map[string]any) *ingest.Outcome {
	return s.importer.SubmitCatalog(ctx, kind, raw)
}

// ImportWorkbook parses data and imports it into target. Row failures land in the
// report; only unreadable files and unknown targets fail the call. Archiving is
// best effort and never changes the report.
func (s *Service) ImportWorkbook(ctx context.Context, target, filename string, data []byte, archive bool, progress ingest.ProgressFunc) (*ImportResult, error) {
	kind, isProduct := ingest.SheetKind(0), false
	if target != TargetCatalog {
		k, ok := ingest.ParseSheetKind(target)
		if !ok || !k.IsProduct() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
		}
		kind, isProduct = k, true
	}

	sheets, err := ingest.ReadWorkbook(bytes.NewReader(data), filename)
	if errors.Is(err, ingest.ErrUnsupportedFile) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}

	var report *ingest.Report
	if isProduct {
		if report, err = s.importer.ImportProducts(ctx, kind, sheets, progress); err != nil {
			return nil, err
		}
	} else {
		report = s.importer.ImportCatalog(ctx, sheets, progress)
	}

	s.logger.Info("Workbook imported",
		zap.String("target", target),
		zap.String("file", filename),
		zap.Int("sheets", report.Stats.Sheets),
		zap.Int("rows", report.Stats.Rows),
		zap.Int("applied", report.Stats.Applied),
		zap.Int("rejected", report.Stats.Rejected),
	)

	result := &ImportResult{Report: report}
	if archive && s.archiver != nil {
		id, err := s.archiver.Store(context.WithoutCancel(ctx), target, filename, data, report)
		if err != nil {
			s.logger.Warn("Failed to archive import", zap.String("file", filename), zap.Error(err))
		} else {
			result.ArchiveID = id
		}
	}
	return result, nil
}

// ShouldArchive reports whether an import is archived given the caller's request.
func (s *Service) ShouldArchive(requested bool) bool {
	return s.archiver != nil && (requested || s.cfg.Archive)
}

// MaxFileBytes is the upload bound.
func (s *Service) MaxFileBytes() int64 {
	return s.cfg.MaxFileBytes()
}

// Export renders the import template of a product kind.
func (s *Service) Export(ctx context.Context, kind ingest.SheetKind) ([]byte, error) {
	f, err := s.exporter.Export(ctx, kind)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", kind, err)
	}
	return buf.Bytes(), nil
}

// Archives lists archived imports of target.
func (s *Service) Archives(ctx context.Context, target string) ([]ingest.ArchiveEntry, error) {
	if s.archiver == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archiver.List(ctx, target)
}

// ArchivedReport returns the report of an archived import.
func (s *Service) ArchivedReport(ctx context.Context, target, id string) (*ingest.Report, error) {
	if s.archiver == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archiver.Report(ctx, target, id)
}
