package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/epify/inventory-api/internal/application/analytics"
	"github.com/epify/inventory-api/internal/application/auth"
	"github.com/epify/inventory-api/internal/application/inventory"
	"github.com/epify/inventory-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InventoryUC *inventory.UseCase
	AnalyticsUC *analytics.UseCase
	AdminGrants repository.AdminGrantRepository
	JWTSecret   string
	AppName     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.InventoryUC)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminRequired := AdminMiddleware(deps.AdminGrants)

	// Info básica de la API (público)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": deps.AppName + " API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"auth":     fiber.Map{"register": "POST /register", "login": "POST /login"},
				"products": fiber.Map{"list": "GET /api/products", "create": "POST /api/products", "update": "PUT /api/products/:id/quantity"},
				"admin":    fiber.Map{"analytics": "GET /api/admin/analytics/*"},
			},
		})
	})

	// Métricas Prometheus (promhttp vía adaptor net/http -> fiber)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth en la raíz (público), como el cliente original espera
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Probe de rol elevado
	app.Get("/check-admin", authRequired, adminRequired, authHandler.CheckAdmin)

	api := app.Group("/api")

	// Products (protegido, siempre filtrado por el dueño autenticado)
	products := api.Group("/products", authRequired)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Put("/:id/quantity", productHandler.UpdateQuantity)

	// Analítica administrativa: AdminMiddleware es el último gate antes del agregador
	admin := api.Group("/admin", authRequired, adminRequired)
	admin.Get("/analytics/most-added", analyticsHandler.MostAdded)
	admin.Get("/analytics/product/:id/history", analyticsHandler.ProductHistory)
	admin.Get("/analytics/stats", analyticsHandler.GlobalStats)
}
