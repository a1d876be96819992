package cmd

import (
	"drinks-api/core/schema"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the catalog tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := connect(cfg, logg)
		if err != nil {
			return err
		}
		if err := schema.Migrate(db); err != nil {
			return err
		}
		logg.Info("Catalog schema migrated", zap.Int("tables", len(schema.AllModels())))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
