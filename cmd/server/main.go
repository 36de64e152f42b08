package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/products-catalog/backend/internal/config"
	"github.com/products-catalog/backend/internal/handlers"
	"github.com/products-catalog/backend/internal/middleware"
	"github.com/products-catalog/backend/internal/repository"
	"github.com/products-catalog/backend/internal/repository/gormdb"
	"github.com/products-catalog/backend/internal/repository/memory"
	"github.com/products-catalog/backend/internal/service"
	"github.com/products-catalog/backend/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting products catalog api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"db_driver", cfg.Database.Driver,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories
	categoryRepo, productRepo, stockRepo, err := buildRepositories(cfg, log)
	if err != nil {
		log.Error("failed to initialize repositories", "error", err)
		os.Exit(1)
	}

	// Initialize services
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo, stockRepo)
	stockService := service.NewStockService(stockRepo, productRepo, categoryRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	categoryHandler := handlers.NewCategoryHandler(categoryService, log)
	productHandler := handlers.NewProductHandler(productService, log)
	stockHandler := handlers.NewStockHandler(stockService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics())
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check and metrics endpoints
	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/metrics", middleware.MetricsHandler().ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Read endpoints
		r.Get("/category", categoryHandler.ListCategories)
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)

		// Mutating endpoints require an API key
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))

			r.Post("/product", productHandler.CreateProduct)
			r.Delete("/product/{productId}", productHandler.DeleteProduct)
			r.Put("/stock/{productId}", stockHandler.UpdateStock)
			r.Post("/stock/reserve", stockHandler.Reserve)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// buildRepositories wires the configured store: GORM over Postgres, or
// the in-memory store when no database is configured
func buildRepositories(cfg *config.Config, log *slog.Logger) (repository.CategoryRepository, repository.ProductRepository, repository.StockRepository, error) {
	if cfg.Database.Driver == "memory" {
		log.Info("using in-memory repositories")
		return memory.NewCategoryStore(), memory.NewProductStore(), memory.NewStockStore(), nil
	}

	db, err := gormdb.Open(cfg.Database.DSN())
	if err != nil {
		return nil, nil, nil, err
	}
	if err := gormdb.Migrate(db); err != nil {
		return nil, nil, nil, err
	}

	productStore, err := gormdb.NewProductStore(db)
	if err != nil {
		return nil, nil, nil, err
	}

	return gormdb.NewCategoryStore(db), productStore, gormdb.NewStockStore(db), nil
}
