package cmd

import (
	"errors"
	"sort"

	"drinks-api/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the catalog schema and import archive storage",
	Long:  `Checks that the database holds every catalog table and column, and that the import archive bucket exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the catalog schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the import archive bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, storageCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
}

func runIntegrityChecks(cmd *cobra.Command, runSchema, runStorage bool) error {
	ctx := cmd.Context()

	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	db, err := connect(cfg, logg)
	if err != nil {
		return err
	}
	store, err := openStorage(ctx, cfg, false)
	if err != nil {
		return err
	}

	svc := integrity.NewFeature(db, store, cfg.Storage, cfg.Import.ArchivePrefix, logg).Service()

	if runSchema {
		logg.Info("Checking catalog schema...", zap.String("driver", cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			return err
		}
		if report.Matched {
			logg.Info("Catalog schema matches the models.")
		} else {
			logg.Warn("Catalog schema mismatches found")
			tables := make([]string, 0, len(report.Tables))
			for table := range report.Tables {
				tables = append(tables, table)
			}
			sort.Strings(tables)
			for _, table := range tables {
				tbl := report.Tables[table]
				switch {
				case tbl.Status == "missing":
					logg.Warn("Missing table", zap.String("table", table))
				case tbl.Status != "ok":
					if len(tbl.MissingColumns) > 0 {
						logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
					}
					if len(tbl.NullableColumns) > 0 {
						logg.Warn("Nullable Columns", zap.String("table", table), zap.Strings("columns", tbl.NullableColumns))
					}
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			logg.Info("Run migrate to create missing tables and columns.")
		}
	}

	if runStorage {
		logg.Info("Checking import archive storage...")
		report, err := svc.CheckStorage(ctx)
		switch {
		case errors.Is(err, integrity.ErrStorageDisabled):
			logg.Info("Object storage not configured, skipping.")
			return nil
		case err != nil:
			return err
		}

		if report.Exists {
			logg.Info("Archive bucket present.", zap.String("bucket", report.Bucket), zap.Any("archives", report.Archives))
		} else if fixFlag {
			if err := svc.FixStorage(ctx); err != nil {
				return err
			}
		} else {
			logg.Warn("Archive bucket missing", zap.String("bucket", report.Bucket))
			logg.Info("Run with --fix to create it.")
		}
	}
	return nil
}
