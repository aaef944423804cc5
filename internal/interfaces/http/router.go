package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lemlem-pharmacy/backend/internal/application/auth"
	"github.com/lemlem-pharmacy/backend/internal/application/bincard"
	"github.com/lemlem-pharmacy/backend/internal/application/notification"
	"github.com/lemlem-pharmacy/backend/internal/application/reporting"
	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ReportUC       *reporting.ReportUseCase
	BinCardUC      *bincard.UseCase
	NotificationUC *notification.UseCase
	AuthUC         *auth.UseCase
	JWTSecret      string
}

// Router registers the API routes. Everything except login requires a
// Bearer token; the decision-support reports additionally require the
// manager role.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public login, protected password change)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Put("/password", AuthMiddleware(deps.JWTSecret), authHandler.UpdatePassword)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Bin cards (protected)
	bincards := protected.Group("/bincards")
	bincardHandler := NewBinCardHandler(deps.BinCardUC)
	bincards.Get("/", bincardHandler.List)
	bincards.Get("/search", bincardHandler.Search)
	bincards.Get("/range", bincardHandler.ListByDateRange)
	bincards.Get("/batch/:batchNo", bincardHandler.ListByBatchNo)
	bincards.Get("/:id", bincardHandler.GetByID)

	// Customer notifications (protected, manager only)
	notifications := protected.Group("/notifications", RequireRole(entity.RoleManager))
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/search", notificationHandler.Search)
	notifications.Get("/batch/:batchNo", notificationHandler.ListByBatchNo)
	notifications.Get("/phone/:phoneNo", notificationHandler.ListByPhoneNo)
	notifications.Post("/", notificationHandler.Add)
	notifications.Post("/dispatch", notificationHandler.DispatchDue)
	notifications.Get("/:id", notificationHandler.GetByID)
	notifications.Put("/:id", notificationHandler.Update)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Decision-support reports (protected, manager only)
	dss := protected.Group("/dss", RequireRole(entity.RoleManager))
	reportHandler := NewReportHandler(deps.ReportUC)
	dss.Get("/damaged", reportHandler.FullDamagedReport)
	dss.Get("/damaged-by-category", reportHandler.DamagedByCategory)
	dss.Get("/sold-by-category", reportHandler.SoldByCategory)
	dss.Get("/in-stock-by-category", reportHandler.InStockByCategory)
	dss.Get("/profit-loss", reportHandler.ProfitLoss)
	dss.Get("/profit-loss-by-date", reportHandler.ProfitLossByDate)
	dss.Get("/profit-loss/pdf", reportHandler.ProfitLossPDF)
	dss.Get("/most-sold", reportHandler.MostSold)
	dss.Get("/sales-by-date", reportHandler.SalesByDate)
	dss.Get("/stock-card", reportHandler.StockCard)
	dss.Get("/forecast", reportHandler.Forecast)
	dss.Get("/batch/:batchNo", reportHandler.BatchInfo)
}
