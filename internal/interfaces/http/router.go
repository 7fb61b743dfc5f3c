package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ProductUC    *usecase.ProductUseCase
	PicoUC       *inventory.PicoUseCase
	PaletizadoUC *inventory.PaletizadoUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	ActivityUC   *appanalytics.ActivityUseCase
	ReportUC     *report.StockReportUseCase
	Cookie       CookieConfig
	// LoginLimiter se antepone a POST /api/auth/login. Nil desactiva el límite.
	LoginLimiter fiber.Handler
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, log)
	authGroup := api.Group("/auth")
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", deps.LoginLimiter, authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Rutas protegidas (cookie de sesión o Bearer)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC, deps.Cookie.Name))
	adminOnly := RequireRole(entity.RoleAdministrador)

	protected.Get("/auth/user", authHandler.Me)
	protected.Post("/auth/change-password", authHandler.ChangePassword)
	protected.Post("/auth/logout", authHandler.Logout)

	// Users (lectura: sesión; escritura: administrador)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, log)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", adminOnly, userHandler.Create)
	users.Put("/:id", adminOnly, userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Picos
	picos := protected.Group("/picos")
	picoHandler := NewPicoHandler(deps.PicoUC, log)
	picos.Get("/", picoHandler.List)
	picos.Post("/", picoHandler.Create)
	picos.Get("/:id", picoHandler.GetByID)
	picos.Put("/:id", picoHandler.Update)
	picos.Delete("/:id", picoHandler.Delete)

	// Paletizados
	stock := protected.Group("/paletizado-stock")
	stockHandler := NewPaletizadoHandler(deps.PaletizadoUC, log)
	stock.Get("/", stockHandler.List)
	stock.Post("/", stockHandler.Create)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", stockHandler.Delete)

	// Dashboard y actividad
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ActivityUC, log)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
	protected.Get("/activity-logs", dashboardHandler.ListActivity)

	// Reportes
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC, log)
		protected.Get("/reports/stock.pdf", reportHandler.StockPDF)
	}
}
