package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"drinks-api/core/ingest"
	"drinks-api/feature/drinks"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importKind    string
	importArchive bool
	importReport  string
)

// importCmd imports a workbook from disk, the same way the upload endpoints do.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a beers, spirits or catalog workbook",
	Long: `Imports an .xlsx or .csv workbook into the catalog.

Invalid rows are skipped and listed in the report; valid rows are upserted, so
running the same file twice leaves the catalog unchanged.

Examples:
  import beers.xlsx --kind beers
  import catalog.xlsx --kind catalog --archive --report report.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		started := time.Now()

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if int64(len(data)) > cfg.Import.MaxFileBytes() {
			return fmt.Errorf("%s is %s, larger than the %d MB import limit",
				path, humanize.Bytes(uint64(len(data))), cfg.Import.MaxFileMB)
		}

		db, err := connect(cfg, logg)
		if err != nil {
			return err
		}

		var archiver *ingest.Archiver
		if importArchive {
			store, err := openStorage(cmd.Context(), cfg, true)
			if err != nil {
				return fmt.Errorf("failed to prepare storage: %w", err)
			}
			if store == nil {
				return fmt.Errorf("--archive requires storage.endpoint")
			}
			archiver = newArchiver(store, cfg)
		}

		svc := drinks.NewService(db, archiver, cfg.Import, logg)
		progress := newSheetProgress()
		res, err := svc.ImportWorkbook(cmd.Context(), importKind, filepath.Base(path), data, importArchive, progress.update)
		progress.finish()
		if err != nil {
			return err
		}

		stats := res.Report.Stats
		fmt.Println("\n=== Import Summary ===")
		fmt.Printf("File: %s (%s)\n", path, humanize.Bytes(uint64(len(data))))
		fmt.Printf("Sheets: %s\n", humanize.Comma(int64(stats.Sheets)))
		fmt.Printf("Rows: %s\n", humanize.Comma(int64(stats.Rows)))
		fmt.Printf("Applied: %s (%s new)\n", humanize.Comma(int64(stats.Applied)), humanize.Comma(int64(stats.Created)))
		fmt.Printf("Rejected: %s\n", humanize.Comma(int64(stats.Rejected)))
		fmt.Printf("Errors: %s\n", humanize.Comma(int64(len(res.Report.Errors))))
		fmt.Printf("Execution Time: %s\n", time.Since(started).Round(time.Millisecond))
		if res.ArchiveID != "" {
			fmt.Printf("Archive: %s\n", res.ArchiveID)
		}

		body, err := json.MarshalIndent(res.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if importReport == "" {
			if len(res.Report.Errors) > 0 {
				fmt.Println(string(body))
			}
			return nil
		}
		if err := os.WriteFile(importReport, body, 0644); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		logg.Info("Import report saved", zap.String("file", importReport), zap.Int("errors", len(res.Report.Errors)))
		return nil
	},
}

// sheetProgress renders one progress bar per sheet.
type sheetProgress struct {
	sheet string
	bar   *pb.ProgressBar
}

func newSheetProgress() *sheetProgress {
	return &sheetProgress{}
}

func (p *sheetProgress) update(sheet string, done, total int) {
	if p.bar == nil || p.sheet != sheet {
		p.finish()
		p.sheet = sheet
		p.bar = pb.Full.Start(total)
		p.bar.Set("prefix", sheet+" ")
	}
	p.bar.SetCurrent(int64(done))
}

func (p *sheetProgress) finish() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}

func init() {
	RootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importKind, "kind", "", "Workbook kind: beers, spirits or catalog")
	importCmd.Flags().BoolVar(&importArchive, "archive", false, "Archive the workbook and report in object storage")
	importCmd.Flags().StringVar(&importReport, "report", "", "Write the JSON report to this file")
	_ = importCmd.MarkFlagRequired("kind")
}
