package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fleetledger/backend/internal/application/bulkimport"
	appledger "github.com/fleetledger/backend/internal/application/ledger"
	reportapp "github.com/fleetledger/backend/internal/application/report"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/infrastructure/cache"
	"github.com/fleetledger/backend/internal/infrastructure/config"
	"github.com/fleetledger/backend/internal/infrastructure/logger"
	"github.com/fleetledger/backend/internal/infrastructure/persistence"
	"github.com/fleetledger/backend/internal/interfaces/http/handler"
	"github.com/fleetledger/backend/internal/interfaces/http/middleware"
	"github.com/fleetledger/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting FleetLedger Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	billingPartyRepo := persistence.NewGormBillingPartyRepository(db.DB)
	driverRepo := persistence.NewGormDriverRepository(db.DB)
	transporterRepo := persistence.NewGormTransporterRepository(db.DB)
	stockItemRepo := persistence.NewGormStockItemRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	tripRepo := persistence.NewGormTripRepository(db.DB)
	tripBookRepo := persistence.NewGormTripBookRepository(db.DB)
	returnTripRepo := persistence.NewGormReturnTripRepository(db.DB)
	partyPaymentRepo := persistence.NewGormPartyPaymentRepository(db.DB)
	driverAdvanceRepo := persistence.NewGormDriverAdvanceRepository(db.DB)
	marketVehPaymentRepo := persistence.NewGormMarketVehPaymentRepository(db.DB)
	stockEntryRepo := persistence.NewGormStockEntryRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	expenseCategoryRepo := persistence.NewGormExpenseCategoryRepository(db.DB)
	paymentModeRepo := persistence.NewGormPaymentModeRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	// Transaction scope shared by services whose writes span multiple tables
	txScope := persistence.NewGormLedgerTransactionScope(db.DB)

	// Idempotency store for bulk imports: Redis when enabled, in-memory otherwise
	var idempotencyStore shared.IdempotencyStore
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisIdempotencyStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				log.Error("Error closing Redis", zap.Error(err))
			}
		}()
		idempotencyStore = redisStore
		log.Info("Redis idempotency store connected",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	} else {
		memStore := cache.NewInMemoryIdempotencyStore()
		defer func() {
			_ = memStore.Close()
		}()
		idempotencyStore = memStore
		log.Info("Using in-memory idempotency store")
	}

	// Initialize application services
	billingPartyService := appledger.NewBillingPartyService(billingPartyRepo, tripBookRepo, returnTripRepo, partyPaymentRepo)
	driverService := appledger.NewDriverService(driverRepo, driverAdvanceRepo)
	transporterService := appledger.NewTransporterService(transporterRepo, tripBookRepo, marketVehPaymentRepo)
	stockItemService := appledger.NewStockItemService(stockItemRepo, stockEntryRepo)
	vehicleService := appledger.NewVehicleService(vehicleRepo, tripRepo)
	tripService := appledger.NewTripService(txScope, tripRepo)
	tripBookService := appledger.NewTripBookService(txScope, tripBookRepo)
	returnTripService := appledger.NewReturnTripService(txScope, returnTripRepo)
	partyPaymentService := appledger.NewPartyPaymentService(txScope, partyPaymentRepo)
	driverAdvanceService := appledger.NewDriverAdvanceService(txScope, driverAdvanceRepo)
	marketVehPaymentService := appledger.NewMarketVehPaymentService(txScope, marketVehPaymentRepo)
	stockEntryService := appledger.NewStockEntryService(txScope, stockEntryRepo)
	expenseService := appledger.NewExpenseService(expenseRepo)
	expenseCategoryService := appledger.NewExpenseCategoryService(expenseCategoryRepo)
	paymentModeService := appledger.NewPaymentModeService(paymentModeRepo)
	reportService := reportapp.NewReportService(reportRepo)

	bulkImportService := bulkimport.NewBulkImportService(
		txScope,
		tripRepo,
		vehicleRepo,
		expenseCategoryRepo,
		idempotencyStore,
		bulkimport.Config{
			TxTimeout:      cfg.Import.TxTimeout,
			MaxBatch:       cfg.Import.MaxBatch,
			BatchSize:      cfg.Import.BatchSize,
			IdempotencyTTL: cfg.Import.IdempotencyTTL,
		},
		log,
	)

	// Initialize HTTP handlers
	billingPartyHandler := handler.NewBillingPartyHandler(billingPartyService)
	driverHandler := handler.NewDriverHandler(driverService)
	transporterHandler := handler.NewTransporterHandler(transporterService)
	stockItemHandler := handler.NewStockItemHandler(stockItemService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	tripHandler := handler.NewTripHandler(tripService)
	tripBookHandler := handler.NewTripBookHandler(tripBookService)
	returnTripHandler := handler.NewReturnTripHandler(returnTripService)
	partyPaymentHandler := handler.NewPartyPaymentHandler(partyPaymentService)
	driverAdvanceHandler := handler.NewDriverAdvanceHandler(driverAdvanceService)
	marketVehPaymentHandler := handler.NewMarketVehPaymentHandler(marketVehPaymentService)
	stockEntryHandler := handler.NewStockEntryHandler(stockEntryService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	expenseCategoryHandler := handler.NewExpenseCategoryHandler(expenseCategoryService)
	paymentModeHandler := handler.NewPaymentModeHandler(paymentModeService)
	bulkImportHandler := handler.NewBulkImportHandler(bulkImportService)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// CORS, body size limit. Org scoping is attached per route group.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	orgScoped := middleware.OrgContext()

	// Masters (billing parties, drivers, transporters, stock items, vehicles)
	mastersRoutes := router.NewDomainGroup("masters", "/masters")
	mastersRoutes.Use(orgScoped)

	mastersRoutes.POST("/billing-parties", billingPartyHandler.Create)
	mastersRoutes.GET("/billing-parties", billingPartyHandler.List)
	mastersRoutes.GET("/billing-parties/:id", billingPartyHandler.GetByID)
	mastersRoutes.PUT("/billing-parties/:id", billingPartyHandler.Update)
	mastersRoutes.DELETE("/billing-parties/:id", billingPartyHandler.Delete)

	mastersRoutes.POST("/drivers", driverHandler.Create)
	mastersRoutes.GET("/drivers", driverHandler.List)
	mastersRoutes.GET("/drivers/:id", driverHandler.GetByID)
	mastersRoutes.PUT("/drivers/:id", driverHandler.Update)
	mastersRoutes.DELETE("/drivers/:id", driverHandler.Delete)

	mastersRoutes.POST("/transporters", transporterHandler.Create)
	mastersRoutes.GET("/transporters", transporterHandler.List)
	mastersRoutes.GET("/transporters/:id", transporterHandler.GetByID)
	mastersRoutes.PUT("/transporters/:id", transporterHandler.Update)
	mastersRoutes.DELETE("/transporters/:id", transporterHandler.Delete)

	mastersRoutes.POST("/stock-items", stockItemHandler.Create)
	mastersRoutes.GET("/stock-items", stockItemHandler.List)
	mastersRoutes.GET("/stock-items/:id", stockItemHandler.GetByID)
	mastersRoutes.PUT("/stock-items/:id", stockItemHandler.Update)
	mastersRoutes.DELETE("/stock-items/:id", stockItemHandler.Delete)

	mastersRoutes.POST("/vehicles", vehicleHandler.Create)
	mastersRoutes.GET("/vehicles", vehicleHandler.List)
	mastersRoutes.GET("/vehicles/by-no/:veh_no", vehicleHandler.GetByVehNo)
	mastersRoutes.GET("/vehicles/:id", vehicleHandler.GetByID)
	mastersRoutes.PUT("/vehicles/:id", vehicleHandler.Update)
	mastersRoutes.DELETE("/vehicles/:id", vehicleHandler.Delete)

	// Trips (the core ledger entries)
	tripRoutes := router.NewDomainGroup("trips", "/trips")
	tripRoutes.Use(orgScoped)
	tripRoutes.POST("", tripHandler.Create)
	tripRoutes.GET("", tripHandler.List)
	tripRoutes.GET("/next-no", tripHandler.NextTripNo)
	tripRoutes.GET("/by-no/:trip_no", tripHandler.GetByTripNo)
	tripRoutes.GET("/:id", tripHandler.GetByID)
	tripRoutes.PUT("/:id", tripHandler.Update)
	tripRoutes.DELETE("/:id", tripHandler.Delete)

	// Trip books (billing ledger against parties and transporters)
	tripBookRoutes := router.NewDomainGroup("trip-books", "/trip-books")
	tripBookRoutes.Use(orgScoped)
	tripBookRoutes.POST("", tripBookHandler.Create)
	tripBookRoutes.GET("", tripBookHandler.List)
	tripBookRoutes.GET("/:id", tripBookHandler.GetByID)
	tripBookRoutes.PUT("/:id", tripBookHandler.Update)
	tripBookRoutes.DELETE("/:id", tripBookHandler.Delete)

	// Return trips
	returnTripRoutes := router.NewDomainGroup("return-trips", "/return-trips")
	returnTripRoutes.Use(orgScoped)
	returnTripRoutes.POST("", returnTripHandler.Create)
	returnTripRoutes.GET("", returnTripHandler.List)
	returnTripRoutes.GET("/:id", returnTripHandler.GetByID)
	returnTripRoutes.PUT("/:id", returnTripHandler.Update)
	returnTripRoutes.DELETE("/:id", returnTripHandler.Delete)

	// Payments (party receipts, driver advances, hired vehicle payments)
	paymentRoutes := router.NewDomainGroup("payments", "/payments")
	paymentRoutes.Use(orgScoped)

	paymentRoutes.POST("/party", partyPaymentHandler.Create)
	paymentRoutes.GET("/party", partyPaymentHandler.List)
	paymentRoutes.GET("/party/:id", partyPaymentHandler.GetByID)
	paymentRoutes.PUT("/party/:id", partyPaymentHandler.Update)
	paymentRoutes.DELETE("/party/:id", partyPaymentHandler.Delete)

	paymentRoutes.POST("/driver-advances", driverAdvanceHandler.Create)
	paymentRoutes.GET("/driver-advances", driverAdvanceHandler.List)
	paymentRoutes.GET("/driver-advances/:id", driverAdvanceHandler.GetByID)
	paymentRoutes.PUT("/driver-advances/:id", driverAdvanceHandler.Update)
	paymentRoutes.DELETE("/driver-advances/:id", driverAdvanceHandler.Delete)

	paymentRoutes.POST("/market-vehicles", marketVehPaymentHandler.Create)
	paymentRoutes.GET("/market-vehicles", marketVehPaymentHandler.List)
	paymentRoutes.GET("/market-vehicles/:id", marketVehPaymentHandler.GetByID)
	paymentRoutes.PUT("/market-vehicles/:id", marketVehPaymentHandler.Update)
	paymentRoutes.DELETE("/market-vehicles/:id", marketVehPaymentHandler.Delete)

	// Stock entries
	stockEntryRoutes := router.NewDomainGroup("stock-entries", "/stock-entries")
	stockEntryRoutes.Use(orgScoped)
	stockEntryRoutes.POST("", stockEntryHandler.Create)
	stockEntryRoutes.GET("", stockEntryHandler.List)
	stockEntryRoutes.GET("/:id", stockEntryHandler.GetByID)
	stockEntryRoutes.PUT("/:id", stockEntryHandler.Update)
	stockEntryRoutes.DELETE("/:id", stockEntryHandler.Delete)

	// Expenses plus their categories and payment modes
	expenseRoutes := router.NewDomainGroup("expenses", "/expenses")
	expenseRoutes.Use(orgScoped)
	expenseRoutes.POST("", expenseHandler.Create)
	expenseRoutes.GET("", expenseHandler.List)
	expenseRoutes.GET("/:id", expenseHandler.GetByID)
	expenseRoutes.PUT("/:id", expenseHandler.Update)
	expenseRoutes.DELETE("/:id", expenseHandler.Delete)

	expenseCategoryRoutes := router.NewDomainGroup("expense-categories", "/expense-categories")
	expenseCategoryRoutes.Use(orgScoped)
	expenseCategoryRoutes.POST("", expenseCategoryHandler.Create)
	expenseCategoryRoutes.GET("", expenseCategoryHandler.List)
	expenseCategoryRoutes.DELETE("/:id", expenseCategoryHandler.Delete)

	paymentModeRoutes := router.NewDomainGroup("payment-modes", "/payment-modes")
	paymentModeRoutes.Use(orgScoped)
	paymentModeRoutes.POST("", paymentModeHandler.Create)
	paymentModeRoutes.GET("", paymentModeHandler.List)
	paymentModeRoutes.DELETE("/:id", paymentModeHandler.Delete)

	// Bulk import
	importRoutes := router.NewDomainGroup("import", "/import")
	importRoutes.Use(orgScoped)
	importRoutes.POST("/bulk", bulkImportHandler.Import)

	// Reports
	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.Use(orgScoped)
	reportRoutes.GET("/trips", reportHandler.GetTripReport)
	reportRoutes.GET("/balance-sheet", reportHandler.GetBalanceSheet)
	reportRoutes.GET("/dashboard", reportHandler.GetDashboardStats)

	// System routes stay outside org scoping
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(mastersRoutes).
		Register(tripRoutes).
		Register(tripBookRoutes).
		Register(returnTripRoutes).
		Register(paymentRoutes).
		Register(stockEntryRoutes).
		Register(expenseRoutes).
		Register(expenseCategoryRoutes).
		Register(paymentModeRoutes).
		Register(importRoutes).
		Register(reportRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
