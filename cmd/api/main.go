package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/WaslIoT/wasl_api/internal/cache"
	"github.com/WaslIoT/wasl_api/internal/config"
	"github.com/WaslIoT/wasl_api/internal/database"
	"github.com/WaslIoT/wasl_api/internal/handler"
	"github.com/WaslIoT/wasl_api/internal/middleware"
	"github.com/WaslIoT/wasl_api/internal/repository"
	"github.com/WaslIoT/wasl_api/internal/service"
)

// main is the application entrypoint for the Wasl storefront & admin API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting wasl api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4. Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	// 5. Initialize services
	catalogSvc := service.NewCatalogService(categoryRepo, productRepo)
	intakeSvc := service.NewOrderIntakeService(productRepo, orderRepo)
	categorySvc := service.NewCategoryManagementService(categoryRepo, productRepo)
	productSvc := service.NewProductManagementService(productRepo, categoryRepo)
	orderSvc := service.NewOrderManagementService(orderRepo)
	authSvc := service.NewAdminAuthService(adminRepo)

	uploadSvc, err := service.NewUploadService(&cfg.S3)
	if err != nil {
		log.Warn().Err(err).Msg("upload service initialization failed - image uploads will be disabled")
	}

	// 5a. Load the initial catalog snapshot. A failure is not fatal: the
	// snapshot stays empty until the first successful refresh.
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalogSvc.Refresh(bootCtx); err != nil {
		log.Warn().Err(err).Msg("initial catalog load failed")
	}
	bootCancel()

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(db),
		Catalog:  handler.NewCatalogHandler(catalogSvc),
		Order:    handler.NewOrderHandler(intakeSvc),
		Auth:     handler.NewAuthHandler(authSvc),
		Category: handler.NewCategoryManagementHandler(categorySvc),
		Product:  handler.NewProductManagementHandler(productSvc),
		Orders:   handler.NewOrderManagementHandler(orderSvc),
		Upload:   handler.NewUploadHandler(uploadSvc),
	}

	// 7. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware()
	throttle := middleware.NewOrderThrottle(redisClient, cfg.Throttle.OrderLimit, cfg.Throttle.OrderWindow)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw, throttle)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Catalog  *handler.CatalogHandler
	Order    *handler.OrderHandler
	Auth     *handler.AuthHandler
	Category *handler.CategoryManagementHandler
	Product  *handler.ProductManagementHandler
	Orders   *handler.OrderManagementHandler
	Upload   *handler.UploadHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware, throttle *middleware.OrderThrottle) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public storefront routes
	router.GET("/v1/countries", handlers.Catalog.GetCountries)
	catalog := router.Group("/v1/catalog")
	{
		catalog.GET("/categories", handlers.Catalog.GetCategories)
		catalog.GET("/products", handlers.Catalog.GetProducts)
	}
	router.POST("/v1/orders", throttle.Handle(), handlers.Order.CreateOrder)

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		// Category Management
		admin.GET("/categories", handlers.Category.ListCategories)
		admin.POST("/categories", handlers.Category.CreateCategory)
		admin.PUT("/categories/:id", handlers.Category.UpdateCategory)
		admin.DELETE("/categories/:id", handlers.Category.DeleteCategory)

		// Product Management
		admin.GET("/products", handlers.Product.ListProducts)
		admin.POST("/products", handlers.Product.CreateProduct)
		admin.PUT("/products/:id", handlers.Product.UpdateProduct)
		admin.PATCH("/products/:id/toggle", handlers.Product.ToggleProduct)
		admin.DELETE("/products/:id", handlers.Product.DeleteProduct)

		// Order Management
		admin.GET("/orders", handlers.Orders.ListOrders)
		admin.GET("/orders/stats", handlers.Orders.GetStats)
		admin.PUT("/orders/:id/status", handlers.Orders.UpdateOrderStatus)
		admin.DELETE("/orders/:id", handlers.Orders.DeleteOrder)

		// Catalog snapshot refresh & image uploads
		admin.POST("/catalog/refresh", handlers.Catalog.Refresh)
		admin.POST("/uploads", handlers.Upload.Upload)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
