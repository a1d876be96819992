package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"drinks-api/core/loader"
	"drinks-api/core/logger"
	"drinks-api/core/middleware/auth"
	"drinks-api/core/middleware/rayid"
	"drinks-api/core/schema"
	"drinks-api/core/tracing"
	"drinks-api/feature/drinks"
	"drinks-api/feature/integrity"

	"drinks-api/docs/swagger"

	"github.com/gofiber/fiber/v2"
	fiberswagger "github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Drinks Catalog API
// @version 1.0
// @description Admin API for ingesting the beverage catalog.
// @host localhost:8080
// @BasePath /v1/admin

var migrateOnStart bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, logg)
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				logg.Warn("Failed to flush traces", zap.Error(err))
			}
		}()

		db, err := connect(cfg, logg)
		if err != nil {
			return err
		}
		if migrateOnStart {
			if err := schema.Migrate(db); err != nil {
				return err
			}
			logg.Info("Catalog schema migrated")
		}

		store, err := openStorage(ctx, cfg, true)
		if err != nil {
			return fmt.Errorf("failed to prepare storage: %w", err)
		}
		if store == nil {
			logg.Info("Object storage not configured, import archive disabled")
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(drinks.NewFeature(db, newArchiver(store, cfg), cfg.Import, logg))
		mgr.Register(integrity.NewFeature(db, store, cfg.Storage, cfg.Import.ArchivePrefix, logg))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
				return err
			}
			l.Info("Request handled", fields...)
			return nil
		})

		swagger.SwaggerInfo.BasePath = cfg.Server.Prefix
		app.Get("/swagger/*", fiberswagger.HandlerDefault)

		api := app.Group(cfg.Server.Prefix, auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		if err := mgr.LoadAll(api); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("prefix", cfg.Server.Prefix))
			errCh <- app.Listen(":" + cfg.Server.Port)
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Migrate the catalog schema before serving")
}
