package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemax-web/internal/application/assistant"
	"github.com/jhoicas/storemax-web/internal/application/auth"
	"github.com/jhoicas/storemax-web/internal/application/catalog"
	"github.com/jhoicas/storemax-web/internal/application/dashboard"
	"github.com/jhoicas/storemax-web/internal/application/pos"
	"github.com/jhoicas/storemax-web/internal/application/report"
	"github.com/jhoicas/storemax-web/internal/application/staff"
	"github.com/jhoicas/storemax-web/internal/domain/access"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/pkg/logger"
	"github.com/jhoicas/storemax-web/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session     SessionConfig
	AuthUC      *auth.UseCase
	DashboardUC *dashboard.UseCase
	CatalogUC   *catalog.UseCase
	POSUC       *pos.UseCase
	StaffUC     *staff.UseCase
	AssistantUC *assistant.UseCase
	ReportUC    *report.UseCase

	// LoginLimiter nil desactiva el límite de intentos.
	LoginLimiter RateCounter
	LoginLimit   int
	LoginWindow  time.Duration

	Metrics *metrics.Recorder
	Log     *logger.Logger
}

// Router registra las rutas del gateway web. Cada prefijo protegido lleva su
// requisito de rol y lo heredan sus subrutas.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app.Use(SessionMiddleware(deps.Session))

	// Público
	authHandler := NewAuthHandler(deps.AuthUC, deps.POSUC, deps.Session, log.Component("auth"))
	app.Get("/", authHandler.Landing)
	app.Post("/select-role", authHandler.SelectRole)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", RateLimit(deps.LoginLimiter, "login", deps.LoginLimit, deps.LoginWindow, log), authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/unauthorized", authHandler.Unauthorized)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log.Component("dashboard"))
	staffHandler := NewStaffHandler(deps.StaffUC, log.Component("staff"))

	// Alta de personal (solo Admin)
	signup := app.Group("/signup", RequireRole(access.Only(entity.RoleAdmin), deps.Metrics))
	signup.Get("/", staffHandler.SignupForm)
	signup.Post("/", staffHandler.Register)

	// Admin
	admin := app.Group("/admin", RequireRole(access.Only(entity.RoleAdmin), deps.Metrics))
	admin.Get("/", dashboardHandler.Admin)
	admin.Get("/reports", dashboardHandler.Reports)
	admin.Get("/history", dashboardHandler.History)
	admin.Get("/staff", staffHandler.List)
	admin.Post("/staff/password", staffHandler.ChangePassword)
	admin.Delete("/staff/:username", staffHandler.Delete)

	// Inventory (Inventory Manager, Admin, Manager)
	inventory := app.Group("/inventory", RequireRole(access.OneOf(entity.RoleInventoryManager, entity.RoleAdmin, entity.RoleManager), deps.Metrics))
	catalogHandler := NewCatalogHandler(deps.CatalogUC, log.Component("catalog"))
	inventory.Get("/", dashboardHandler.Inventory)
	inventory.Post("/products", catalogHandler.CreateProduct)
	inventory.Put("/products/:name", catalogHandler.UpdateProduct)
	inventory.Delete("/products/:name", catalogHandler.DeleteProduct)
	inventory.Post("/categories", catalogHandler.CreateCategory)
	inventory.Put("/categories/:name", catalogHandler.UpdateCategory)
	inventory.Delete("/categories/:name", catalogHandler.DeleteCategory)

	// Manager (Manager, Admin)
	manager := app.Group("/manager", RequireRole(access.OneOf(entity.RoleManager, entity.RoleAdmin), deps.Metrics))
	reportHandler := NewReportHandler(deps.ReportUC, log.Component("report"))
	salesHandler := NewSalesHandler(deps.POSUC, log.Component("sales"))
	manager.Get("/", dashboardHandler.Manager)
	manager.Get("/history", dashboardHandler.History)
	manager.Get("/report.csv", reportHandler.ManagerCSV)
	manager.Get("/report.pdf", reportHandler.ManagerPDF)
	manager.Post("/sales", salesHandler.ManualSale)

	// Cashier (Cashier, Admin)
	cashier := app.Group("/cashier", RequireRole(access.OneOf(entity.RoleCashier, entity.RoleAdmin), deps.Metrics))
	cashierHandler := NewCashierHandler(deps.DashboardUC, deps.POSUC, deps.ReportUC, log.Component("cashier"))
	cashier.Get("/", cashierHandler.View)
	cashier.Get("/history", dashboardHandler.History)
	cashier.Get("/cart", cashierHandler.Cart)
	cashier.Delete("/cart", cashierHandler.ClearCart)
	cashier.Post("/cart/items", cashierHandler.AddItem)
	cashier.Put("/cart/items/:name", cashierHandler.SetQuantity)
	cashier.Delete("/cart/items/:name", cashierHandler.RemoveItem)
	cashier.Post("/checkout", cashierHandler.Checkout)
	cashier.Get("/receipts/:sale_id.pdf", cashierHandler.ReceiptPDF)
	cashier.Get("/receipts/:sale_id", cashierHandler.Receipt)

	// Asistente (cualquier sesión autenticada)
	assistantGroup := app.Group("/assistant", RequireRole(access.AnyRole(), deps.Metrics))
	assistantHandler := NewAssistantHandler(deps.AssistantUC, log.Component("assistant"))
	assistantGroup.Post("/", assistantHandler.Ask)
}
