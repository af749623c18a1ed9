package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/moda-backoffice/internal/application/screens"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/prefs"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session   Session
	Cache     CacheCleaner
	Dashboard *screens.DashboardScreen
	Inventory *screens.InventoryScreen
	Movements *screens.MovementsScreen
	Orders    *screens.OrdersScreen
	Customers *screens.CustomersScreen
	Products  *screens.ProductsScreen
	Mutations *screens.Mutations
	Prefs     *prefs.Store
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesión (público: guardar el token es el paso previo a todo lo demás)
	sessionHandler := NewSessionHandler(deps.Session, deps.Cache)
	api.Put("/session", sessionHandler.Save)
	api.Delete("/session", sessionHandler.Logout)

	// Rutas protegidas (requieren sesión local vigente)
	protected := api.Group("/", SessionMiddleware(deps.Session))

	// Pantallas (protegido)
	screensGroup := protected.Group("/screens")

	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	screensGroup.Get("/dashboard", dashboardHandler.Screen)

	inventoryHandler := NewInventoryHandler(deps.Inventory, deps.Movements)
	screensGroup.Get("/inventory", inventoryHandler.Screen)
	screensGroup.Get("/inventory/today", inventoryHandler.Today)
	screensGroup.Get("/movements", inventoryHandler.Movements)

	ordersHandler := NewOrdersHandler(deps.Orders, deps.Mutations)
	screensGroup.Get("/orders", ordersHandler.List)

	customersHandler := NewCustomersHandler(deps.Customers, deps.Mutations)
	screensGroup.Get("/customers", customersHandler.List)

	productsHandler := NewProductsHandler(deps.Products, deps.Mutations)
	screensGroup.Get("/products", productsHandler.List)
	screensGroup.Post("/products/expand-all", productsHandler.ExpandAll)
	screensGroup.Post("/products/collapse-all", productsHandler.CollapseAll)
	screensGroup.Post("/products/:id/toggle", productsHandler.Toggle)

	// Formularios (protegido)
	protected.Post("/orders", ordersHandler.Create)
	protected.Put("/orders/:id", ordersHandler.Update)

	protected.Post("/customers", customersHandler.Create)
	protected.Put("/customers/:id", customersHandler.Update)

	protected.Post("/products", productsHandler.Create)
	protected.Put("/products/:id", productsHandler.Update)

	// Movimientos de bodega (protegido)
	stockHandler := NewStockHandler(deps.Mutations)
	warehouse := protected.Group("/warehouse")
	warehouse.Post("/stock-in", stockHandler.StockIn)
	warehouse.Post("/stock-out", stockHandler.StockOut)

	// Preferencias de UI (protegido)
	prefsHandler := NewPrefsHandler(deps.Prefs)
	protectedPrefs := protected.Group("/prefs")
	protectedPrefs.Get("/tables/:table/columns", prefsHandler.Get)
	protectedPrefs.Put("/tables/:table/columns", prefsHandler.Put)
}
