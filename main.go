package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"gudang/internal/config"
	"gudang/internal/handlers"
	"gudang/internal/middleware"
	"gudang/internal/repositories"
	"gudang/internal/services"
	"gudang/pkg/database"
	"gudang/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogPretty)

	// --- Storage backend selection ---
	// The file driver preserves the flat-JSON-document layout; the
	// relational drivers trade that for an atomic sale commit.
	var (
		inventoryRepo   repositories.InventoryRepository
		transactionRepo repositories.TransactionRepository
		committer       repositories.SaleCommitter
	)
	switch cfg.StorageDriver {
	case "file":
		store, err := repositories.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to open file store")
		}
		inventoryRepo = store.Inventory
		transactionRepo = store.Transactions
		committer = store
	case "sqlite", "postgres":
		db, err := database.Open(cfg.StorageDriver, cfg.DatabaseDSN)
		if err != nil {
			log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open database")
		}
		store := repositories.NewGormStore(db)
		inventoryRepo = store.Inventory
		transactionRepo = store.Transactions
		committer = store
	default:
		log.Fatal().Str("driver", cfg.StorageDriver).Msg("unsupported storage driver")
	}

	// --- Services and handlers ---
	inventoryService := services.NewInventoryService(inventoryRepo)
	saleService := services.NewSaleService(inventoryRepo, transactionRepo, committer)

	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	transactionHandler := handlers.NewTransactionHandler(saleService)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(middleware.CORS())

	apiV1 := app.Group("/api/v1")
	inventoryHandler.RegisterRoutes(apiV1)
	transactionHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"storage": cfg.StorageDriver,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	// --- Start and graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.AppPort).Str("storage", cfg.StorageDriver).Msg("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped")
}

// errorHandler renders every error Fiber surfaces, including recovered
// panics and routing errors, as the JSON error envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	message := err.Error()
	if code == fiber.StatusMethodNotAllowed {
		message = "Method not allowed"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
