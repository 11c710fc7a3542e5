package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	coverageapp "github.com/dms/backend/internal/application/coverage"
	identityapp "github.com/dms/backend/internal/application/identity"
	inventoryapp "github.com/dms/backend/internal/application/inventory"
	partnerapp "github.com/dms/backend/internal/application/partner"
	partyapp "github.com/dms/backend/internal/application/party"
	tradeapp "github.com/dms/backend/internal/application/trade"
	"github.com/dms/backend/internal/infrastructure/auth"
	"github.com/dms/backend/internal/infrastructure/config"
	"github.com/dms/backend/internal/infrastructure/logger"
	"github.com/dms/backend/internal/infrastructure/persistence"
	"github.com/dms/backend/internal/interfaces/http/handler"
	"github.com/dms/backend/internal/interfaces/http/middleware"
	"github.com/dms/backend/internal/interfaces/http/router"
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
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting DMS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Log domain events emitted by aggregates after successful writes
	persistence.NewEventLogger(log).RegisterCallbacks(db.DB)

	// Initialize repositories
	dealerRepo := persistence.NewGormDealerRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	concesionarioRepo := persistence.NewGormConcesionarioRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	insuranceRepo := persistence.NewGormInsuranceRepository(db.DB)

	// Transaction scopes for multi-aggregate operations
	tradeScope := persistence.NewGormTradeTransactionScope(db.DB)
	partnerScope := persistence.NewGormPartnerTransactionScope(db.DB)

	// Initialize JWT service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize application services
	dealerService := identityapp.NewDealerService(dealerRepo)
	profileService := identityapp.NewProfileService(profileRepo, dealerRepo)
	concesionarioService := partnerapp.NewConcesionarioService(partnerScope, concesionarioRepo, vehicleRepo)
	clientService := partyapp.NewClientService(clientRepo, contractRepo)
	vehicleService := inventoryapp.NewVehicleService(vehicleRepo, concesionarioRepo, contractRepo, insuranceRepo)
	contractService := tradeapp.NewContractService(tradeScope, contractRepo, clientRepo, vehicleRepo)
	insuranceService := coverageapp.NewInsuranceService(insuranceRepo, vehicleRepo, clientRepo, contractRepo)

	// Initialize HTTP handlers
	dealerHandler := handler.NewDealerHandler(dealerService)
	profileHandler := handler.NewProfileHandler(profileService)
	concesionarioHandler := handler.NewConcesionarioHandler(concesionarioService)
	clientHandler := handler.NewClientHandler(clientService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	contractHandler := handler.NewContractHandler(contractService)
	insuranceHandler := handler.NewInsuranceHandler(insuranceService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Identity domain (dealers, profiles)
	identityRoutes := router.NewDomainGroup("identity", "/identity")
	identityRoutes.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "identity service ready"})
	})

	// Dealer management (platform administration)
	identityRoutes.POST("/dealers", middleware.RequireAdmin(), dealerHandler.Create)
	identityRoutes.GET("/dealers", middleware.RequireAdmin(), dealerHandler.List)
	identityRoutes.GET("/dealers/:id", dealerHandler.GetByID)
	identityRoutes.PUT("/dealers/:id", middleware.RequireAdmin(), dealerHandler.Update)
	identityRoutes.DELETE("/dealers/:id", middleware.RequireAdmin(), dealerHandler.Delete)
	identityRoutes.POST("/dealers/:id/suspend", middleware.RequireAdmin(), dealerHandler.Suspend)
	identityRoutes.POST("/dealers/:id/activate", middleware.RequireAdmin(), dealerHandler.Activate)

	// Profile management (dealer staff)
	identityRoutes.POST("/profiles", middleware.RequireAdmin(), profileHandler.Create)
	identityRoutes.GET("/profiles", profileHandler.List)
	identityRoutes.GET("/profiles/me", profileHandler.GetMe)
	identityRoutes.PUT("/profiles/:id/role", middleware.RequireAdmin(), profileHandler.ChangeRole)
	identityRoutes.POST("/profiles/:id/disable", middleware.RequireAdmin(), profileHandler.Disable)
	identityRoutes.POST("/profiles/:id/enable", middleware.RequireAdmin(), profileHandler.Enable)
	identityRoutes.DELETE("/profiles/:id", middleware.RequireAdmin(), profileHandler.Delete)

	// Partner domain (concesionarios)
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/concesionarios", concesionarioHandler.Create)
	partnerRoutes.GET("/concesionarios", concesionarioHandler.List)
	partnerRoutes.GET("/concesionarios/:id", concesionarioHandler.GetByID)
	partnerRoutes.PUT("/concesionarios/:id", concesionarioHandler.Update)
	partnerRoutes.POST("/concesionarios/:id/deactivate", concesionarioHandler.Deactivate)
	partnerRoutes.POST("/concesionarios/:id/activate", concesionarioHandler.Activate)
	partnerRoutes.POST("/concesionarios/:id/release-vehicles", middleware.RequireAdmin(), concesionarioHandler.ReleaseVehicles)
	partnerRoutes.DELETE("/concesionarios/:id", middleware.RequireAdmin(), concesionarioHandler.Delete)

	// Party domain (clients)
	partyRoutes := router.NewDomainGroup("party", "/party")
	partyRoutes.POST("/clients", clientHandler.Create)
	partyRoutes.GET("/clients", clientHandler.List)
	partyRoutes.GET("/clients/:id", clientHandler.GetByID)
	partyRoutes.PUT("/clients/:id", clientHandler.Update)
	partyRoutes.DELETE("/clients/:id", clientHandler.Delete)

	// Inventory domain (vehicles)
	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.POST("/vehicles", vehicleHandler.Create)
	inventoryRoutes.GET("/vehicles", vehicleHandler.List)
	inventoryRoutes.GET("/vehicles/:id", vehicleHandler.GetByID)
	inventoryRoutes.PUT("/vehicles/:id", vehicleHandler.Update)
	inventoryRoutes.POST("/vehicles/:id/status", vehicleHandler.ChangeStatus)
	inventoryRoutes.POST("/vehicles/:id/concesionario", middleware.RequireAdmin(), vehicleHandler.AssignConcesionario)
	inventoryRoutes.DELETE("/vehicles/:id", vehicleHandler.Delete)

	// Trade domain (contracts)
	tradeRoutes := router.NewDomainGroup("trade", "/trade")
	tradeRoutes.POST("/contracts", contractHandler.Create)
	tradeRoutes.GET("/contracts", contractHandler.List)
	tradeRoutes.GET("/contracts/:id", contractHandler.GetByID)
	tradeRoutes.POST("/contracts/:id/status", contractHandler.ChangeStatus)

	// Coverage domain (insurance policies)
	coverageRoutes := router.NewDomainGroup("coverage", "/coverage")
	coverageRoutes.POST("/insurance", insuranceHandler.Create)
	coverageRoutes.GET("/insurance", insuranceHandler.List)
	coverageRoutes.GET("/insurance/:id", insuranceHandler.GetByID)
	coverageRoutes.PUT("/insurance/:id", insuranceHandler.Update)
	coverageRoutes.POST("/insurance/:id/cancel", insuranceHandler.Cancel)
	coverageRoutes.DELETE("/insurance/:id", insuranceHandler.Delete)

	// Register all domain groups
	r.Register(identityRoutes).
		Register(partnerRoutes).
		Register(partyRoutes).
		Register(inventoryRoutes).
		Register(tradeRoutes).
		Register(coverageRoutes)

	// Register system routes
	systemHandler := handler.NewSystemHandler()
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	r.Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

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
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
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
