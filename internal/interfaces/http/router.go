package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/aggregation"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/movement"
	"github.com/jhoicas/Almacen-api/internal/application/orderstatus"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *catalog.UseCase
	RecorderUC  *movement.RecorderUseCase
	Aggregation *aggregation.Engine
	Workflow    *orderstatus.Workflow
	AuthUC      *auth.AuthUseCase
	OrderRepo   repository.OrderRepository
	StockRepo   repository.StockRepository
	ReportGen   *pdf.MarotoReportGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Catálogo maestro (protegido; mutaciones solo admin)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup := protected.Group("/catalog", RequirePage(entity.PageMaster))
	catalogGroup.Get("/:set", catalogHandler.List)
	catalogGroup.Post("/:set", RequireRole(entity.RoleAdmin), catalogHandler.Add)
	catalogGroup.Delete("/:set", RequireRole(entity.RoleAdmin), catalogHandler.Remove)

	// Movimientos (protegido)
	movementHandler := NewMovementHandler(deps.RecorderUC)
	protected.Post("/inbound", RequirePage(entity.PageInbound), movementHandler.RecordInbound)
	protected.Post("/outbound", RequirePage(entity.PageOutbound), movementHandler.RecordOutbound)

	// Órdenes y ciclo de estados (protegido)
	orderHandler := NewOrderHandler(deps.Workflow, deps.OrderRepo)
	protected.Get("/outbound", RequirePage(entity.PageOutbound), orderHandler.List)
	protected.Put("/outbound/:id/status", RequirePage(entity.PageOutbound), orderHandler.SetStatus)
	protected.Post("/outbound/:id/status/commit", RequirePage(entity.PageOutbound), orderHandler.CommitStatus)

	// Agregación: disponibilidad e ingresos (protegido)
	aggregationHandler := NewAggregationHandler(deps.Aggregation, deps.StockRepo, deps.ReportGen)
	protected.Get("/stock/availability", RequirePage(entity.PageStock), aggregationHandler.GetAvailability)
	protected.Get("/revenue/summary", RequirePage(entity.PageRevenue), aggregationHandler.GetRevenueSummary)
	protected.Get("/revenue/summary/pdf", RequirePage(entity.PageRevenue), aggregationHandler.GetRevenueSummaryPDF)
}
