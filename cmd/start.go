package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"property-insights/core/config"
	"property-insights/core/loader"
	"property-insights/core/logger"
	"property-insights/core/middleware/auth"
	"property-insights/core/middleware/rayid"
	"property-insights/core/pipeline"
	"property-insights/core/storage"

	"property-insights/feature/insights"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "property-insights/docs/swagger"
)

// @title Property Insights API
// @version 1.0
// @description API serving the demographics-enriched property listing table.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the property insights server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Storage (only when inputs live in a bucket)
		var store storage.Client
		if cfg.Pipeline.Source == pipeline.SourceStorage {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if ok, err := store.BucketExists(ctx, cfg.Storage.Bucket); err != nil || !ok {
				logg.Warn("Input bucket not reachable, pipeline runs will report missing sources",
					zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
			}
			cancel()
		}

		// 4. Build the pipeline spec and its result cache
		spec, err := pipeline.SpecFromConfig(cfg.Pipeline, store, cfg.Storage.Bucket)
		if err != nil {
			logg.Fatal("Invalid pipeline configuration", zap.Error(err))
		}
		cache := pipeline.NewStore()

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(insights.NewFeature(spec, cache, logg))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
