package main

import (
	"context"
	"net/http"

	"halalpoultry-be/internal/cart"
	"halalpoultry-be/internal/category"
	"halalpoultry-be/internal/config"
	"halalpoultry-be/internal/contact"
	"halalpoultry-be/internal/db"
	"halalpoultry-be/internal/httpapi"
	"halalpoultry-be/internal/logger"
	"halalpoultry-be/internal/metrics"
	"halalpoultry-be/internal/middleware"
	"halalpoultry-be/internal/order"
	"halalpoultry-be/internal/product"
	"halalpoultry-be/internal/seed"
	"halalpoultry-be/internal/user"

	"go.uber.org/zap"
)

type repositories struct {
	users      user.Repository
	categories category.Repository
	products   product.Repository
	carts      cart.Repository
	orders     order.Repository
	contacts   contact.Repository
}

func buildRepositories(cfg *config.Config) (repositories, func()) {
	if cfg.StorageDriver == config.DriverPostgres {
		database := db.InitDB(cfg)
		return repositories{
			users:      user.NewPostgresRepository(database),
			categories: category.NewPostgresRepository(database),
			products:   product.NewPostgresRepository(database),
			carts:      cart.NewPostgresRepository(database),
			orders:     order.NewPostgresRepository(database),
			contacts:   contact.NewPostgresRepository(database),
		}, func() { database.Close() }
	}

	carts := cart.NewMemoryRepository()
	repos := repositories{
		users:      user.NewMemoryRepository(),
		categories: category.NewMemoryRepository(),
		products:   product.NewMemoryRepository(),
		carts:      carts,
		orders:     order.NewMemoryRepository(carts),
		contacts:   contact.NewMemoryRepository(),
	}

	// The in-memory catalog is empty on every start; load the fixed one.
	if err := seed.Load(context.Background(), repos.categories, repos.products); err != nil {
		logger.L().Fatal("catalog seed failed", zap.Error(err))
	}
	return repos, func() {}
}

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	repos, cleanup := buildRepositories(cfg)
	defer cleanup()

	srv := httpapi.NewServer(
		user.NewService(repos.users),
		category.NewService(repos.categories),
		product.NewService(repos.products),
		cart.NewService(repos.carts, repos.products),
		order.NewService(repos.orders),
		contact.NewService(repos.contacts),
	)

	httpMetrics := metrics.NewHTTPMetrics("halalpoultry-be")
	router := srv.Routes(httpMetrics)

	handler := logger.RequestIDMiddleware(
		middleware.AuthMiddleware(
			middleware.RateLimitMiddleware(
				logger.LoggingMiddleware(router),
			),
		),
	)

	logger.L().Info("server listening",
		zap.String("port", cfg.AppPort),
		zap.String("storage_driver", cfg.StorageDriver),
	)
	if err := http.ListenAndServe(":"+cfg.AppPort, handler); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
