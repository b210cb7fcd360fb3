package storeapi

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/magabrotheeeer/store-api/docs"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/health"
	"github.com/magabrotheeeer/store-api/internal/http/middlewarectx"
	orderservice "github.com/magabrotheeeer/store-api/internal/services/order"
	productservice "github.com/magabrotheeeer/store-api/internal/services/product"
	userservice "github.com/magabrotheeeer/store-api/internal/services/user"
)

// Services собирает зависимости, нужные маршрутам.
type Services struct {
	Users    *userservice.Service
	Products *productservice.Service
	Orders   *orderservice.Service
	Health   health.Checker
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	svc Services,
	limiter *rate.Limiter,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
) {
	metrics := middlewarectx.NewMetrics(reg)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		metrics.Middleware,
	)

	healthHandler := health.New(logger, svc.Health)
	r.Get("/", healthHandler.Root)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

		r.Get("/health", ready(healthHandler))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", listUsers(logger, svc.Users))
			r.Post("/", createUser(logger, svc.Users))
			r.Get("/{id}", readUser(logger, svc.Users))
			r.Put("/{id}", updateUser(logger, svc.Users))
			r.Delete("/{id}", removeUser(logger, svc.Users))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", listProducts(logger, svc.Products))
			r.Post("/", createProduct(logger, svc.Products))
			r.Get("/{id}", readProduct(logger, svc.Products))
			r.Put("/{id}", updateProduct(logger, svc.Products))
			r.Delete("/{id}", removeProduct(logger, svc.Products))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", listOrders(logger, svc.Orders))
			r.Post("/", createOrder(logger, svc.Orders))
			r.Get("/{id}", readOrder(logger, svc.Orders))
			r.Put("/{id}", updateOrder(logger, svc.Orders))
			r.Delete("/{id}", removeOrder(logger, svc.Orders))
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
