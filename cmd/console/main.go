package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/moda-backoffice/internal/application/screens"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/api"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/cache"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/prefs"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/session"
	httpRouter "github.com/tu-usuario/moda-backoffice/internal/interfaces/http"
	"github.com/tu-usuario/moda-backoffice/pkg/config"
	"github.com/tu-usuario/moda-backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando consola")

	sessionStore := session.NewStore(cfg.Session.TokenPath)
	prefsStore := prefs.NewStore(cfg.Prefs.Path, cfg.Prefs.Flush())

	queryCache := cache.New(
		cache.WithWindows(cfg.Cache.StaleAfter(), cfg.Cache.GCAfter()),
		cache.WithLogger(log.Component("query_cache")),
	)
	defer queryCache.Stop()

	// Un 401 del backend invalida la sesión completa: token fuera y caché
	// vacía, la próxima petición de pantalla responde SESSION_EXPIRED.
	backend := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), sessionStore,
		api.WithLogger(log.Component("api_client")),
		api.WithUnauthorizedHook(func() {
			queryCache.Clear()
			log.Warn().Msg("sesión rechazada por el backend, caché vaciada")
		}),
	)

	dashboardScreen := screens.NewDashboardScreen(backend, queryCache, log)
	inventoryScreen := screens.NewInventoryScreen(backend, queryCache, log)
	movementsScreen := screens.NewMovementsScreen(backend, queryCache, log)
	ordersScreen := screens.NewOrdersScreen(backend, queryCache, log)
	customersScreen := screens.NewCustomersScreen(backend, queryCache, log)
	productsScreen := screens.NewProductsScreen(backend, queryCache, log)
	mutations := screens.NewMutations(backend, queryCache, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Moda Backoffice",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:   sessionStore,
		Cache:     queryCache,
		Dashboard: dashboardScreen,
		Inventory: inventoryScreen,
		Movements: movementsScreen,
		Orders:    ordersScreen,
		Customers: customersScreen,
		Products:  productsScreen,
		Mutations: mutations,
		Prefs:     prefsStore,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := prefsStore.Close(); err != nil {
		log.Error().Err(err).Msg("persistir preferencias pendientes")
	}

	log.Info().Msg("consola detenida")
}
