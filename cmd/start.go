package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"receiving-manager/core/config"
	"receiving-manager/core/database"
	"receiving-manager/core/loader"
	"receiving-manager/core/logger"
	"receiving-manager/core/middleware/auth"
	"receiving-manager/core/middleware/rayid"
	"receiving-manager/core/storage"

	"receiving-manager/feature/inventory"
	"receiving-manager/feature/receiving"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "receiving-manager/docs/swagger"
)

// @title Receiving Manager API
// @version 1.0
// @description API for the goods-receipt conference workflow.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the receiving manager server",
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
		logg = logg.With(zap.String("warehouse", cfg.Server.Warehouse))

		// 3. Connect to the back-office database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to back-office database")

		// Warn when the receiving tables have not been provisioned; the
		// schema is owned by the upstream back-office migration.
		required := []string{"products", "receipt_documents", "expected_lines", "conference_lines"}
		if missing, err := database.MissingTables(db, required); err == nil && len(missing) > 0 {
			logg.Warn("Schema is missing receiving tables", zap.Strings("tables", missing))
		}

		// 4. Initialize Storage (optional; archives conference summaries)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Optional storage client failed, summaries will not be archived", zap.Error(err))
			store = nil
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Register Features
		mgr := loader.NewManager()
		mgr.Register(receiving.NewFeature(db, store, cfg.Storage.Bucket, logg))
		mgr.Register(inventory.NewFeature(db, logg))

		// Middleware: RayID first so everything downstream is traceable
		app.Use(rayid.New())

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

		// Swagger Documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth protects every API route
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
