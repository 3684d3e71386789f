package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hostaly/hostaly-api/internal/application/auth"
	"github.com/hostaly/hostaly-api/internal/application/inventory"
	"github.com/hostaly/hostaly-api/internal/application/usecase"
	"github.com/hostaly/hostaly-api/internal/infrastructure/postgres"
	httpRouter "github.com/hostaly/hostaly-api/internal/interfaces/http"
	"github.com/hostaly/hostaly-api/pkg/config"
	"github.com/hostaly/hostaly-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("batch_clamp", cfg.Ledger.BatchClamp).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	invRepo := postgres.NewInventoryRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	secLogRepo := postgres.NewSecurityLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := inventory.NewStockUseCase(invRepo, articleRepo, roomRepo, warehouseRepo)
	posterUC := inventory.NewPosterUseCase(txRunner)
	batchUC := inventory.NewBatchUseCase(txRunner, articleRepo, cfg.Ledger.BatchClamp)
	movementUC := inventory.NewMovementUseCase(movRepo, invRepo)
	stockLogUC := inventory.NewStockLogUseCase(postgres.NewStockMovementRepository(pool), articleRepo)
	catalogUC := usecase.NewCatalogUseCase(articleRepo, roomRepo)
	secLogUC := usecase.NewSecurityLogUseCase(secLogRepo)
	authUC := auth.NewAuthUseCase(userRepo, orgRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hostaly API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Stock:     stockUC,
		Poster:    posterUC,
		Batch:     batchUC,
		Movements: movementUC,
		StockLog:  stockLogUC,
		Catalog:   catalogUC,
		SecLog:    secLogUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
