package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hostaly/hostaly-api/internal/application/auth"
	"github.com/hostaly/hostaly-api/internal/application/inventory"
	"github.com/hostaly/hostaly-api/internal/application/usecase"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Stock     *inventory.StockUseCase
	Poster    *inventory.PosterUseCase
	Batch     *inventory.BatchUseCase
	Movements *inventory.MovementUseCase
	StockLog  *inventory.StockLogUseCase
	Catalog   *usecase.CatalogUseCase
	SecLog    *usecase.SecurityLogUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/organizations", authHandler.RegisterOrganization)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Datos de referencia (protegido)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	protected.Get("/articles", catalogHandler.ListArticles)
	protected.Get("/articles/:id", catalogHandler.GetArticle)
	protected.Get("/rooms", catalogHandler.ListRooms)
	protected.Get("/rooms/:id", catalogHandler.GetRoom)

	// Existencias (protegido; borrado y sincronización solo admin)
	adminOnly := RequireRole(entity.RoleAdmin)
	inventoryHandler := NewInventoryHandler(deps.Stock, deps.SecLog)
	protected.Get("/inventory", inventoryHandler.List)
	protected.Post("/inventory", inventoryHandler.Create)
	protected.Post("/inventory/sync-general", adminOnly, inventoryHandler.SyncGeneral)
	protected.Get("/inventory/:id", inventoryHandler.GetByID)
	protected.Delete("/inventory/:id", adminOnly, inventoryHandler.Delete)

	// Ledger: ajustes y consumos (ajuste solo admin)
	consumptionHandler := NewConsumptionHandler(deps.Poster, deps.Batch, deps.SecLog)
	protected.Post("/inventory/:id/adjustment", adminOnly, consumptionHandler.PostAdjustment)
	protected.Post("/inventory/:id/consumption", consumptionHandler.PostConsumption)
	protected.Post("/consumptions/batch", consumptionHandler.PostBatch)

	// Historial de movimientos y ledger de entradas/salidas
	movementHandler := NewMovementHandler(deps.Movements, deps.StockLog)
	protected.Get("/inventory/:id/movements", movementHandler.List)
	protected.Post("/inventory/:id/movements", adminOnly, movementHandler.Record)
	protected.Get("/movements/stats", movementHandler.Statistics)
	protected.Get("/movements/:id", movementHandler.GetByID)
	protected.Get("/articles/:id/stock-movements", movementHandler.ListStockByArticle)

	// Log de seguridad (solo admin)
	secLogHandler := NewSecurityLogHandler(deps.SecLog)
	protected.Get("/security-log", adminOnly, secLogHandler.List)
}
