package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	bookingapp "github.com/travelworks/backend/internal/application/booking"
	catalogapp "github.com/travelworks/backend/internal/application/catalog"
	financeapp "github.com/travelworks/backend/internal/application/finance"
	identityapp "github.com/travelworks/backend/internal/application/identity"
	partnerapp "github.com/travelworks/backend/internal/application/partner"
	reportapp "github.com/travelworks/backend/internal/application/report"
	"github.com/travelworks/backend/internal/domain/finance"
	"github.com/travelworks/backend/internal/infrastructure/auth"
	"github.com/travelworks/backend/internal/infrastructure/config"
	"github.com/travelworks/backend/internal/infrastructure/logger"
	"github.com/travelworks/backend/internal/infrastructure/persistence"
	"github.com/travelworks/backend/internal/interfaces/http/dto"
	"github.com/travelworks/backend/internal/interfaces/http/handler"
	"github.com/travelworks/backend/internal/interfaces/http/middleware"
	"github.com/travelworks/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting TravelWorks Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogLevel := gormlogger.Warn
	if cfg.Log.Level == "debug" {
		gormLogLevel = gormlogger.Info
	}

	db, err := persistence.NewDatabase(&cfg.Database, gormLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	bookingRepo := persistence.NewGormBookingRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	exchangeRateRepo := persistence.NewGormExchangeRateRepository(db.DB)
	hotelRepo := persistence.NewGormHotelRepository(db.DB)
	travelServiceRepo := persistence.NewGormTravelServiceRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	reportRepo := persistence.NewGormBookingReportRepository(db.DB)

	// Domain services
	converter := finance.NewCurrencyConverter(exchangeRateRepo)

	// Application services
	bookingService := bookingapp.NewBookingService(bookingRepo, customerRepo, hotelRepo, travelServiceRepo)
	paymentService := financeapp.NewPaymentService(paymentRepo, bookingRepo, converter)
	expenseService := financeapp.NewExpenseService(expenseRepo, bookingRepo, converter)
	exchangeRateService := financeapp.NewExchangeRateService(exchangeRateRepo)
	hotelService := catalogapp.NewHotelService(hotelRepo, bookingRepo)
	travelServiceService := catalogapp.NewTravelServiceService(travelServiceRepo, bookingRepo)
	customerService := partnerapp.NewCustomerService(customerRepo, bookingRepo)
	reportService := reportapp.NewReportService(reportRepo)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	userService := identityapp.NewUserService(userRepo)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	financeHandler := handler.NewFinanceHandler(paymentService, expenseService, exchangeRateService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	travelServiceHandler := handler.NewTravelServiceHandler(travelServiceService)
	customerHandler := handler.NewCustomerHandler(customerService)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterCurrencyValidator(cfg.Currency.Supported); err != nil {
		log.Fatal("Failed to register currency validator", zap.Error(err))
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	r.Use(middleware.JWTAuth(middleware.JWTConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}))

	authRoutes := router.NewDomainGroup("/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.GET("/me", authHandler.GetCurrentUser)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	identityRoutes := router.NewDomainGroup("/identity")
	identityRoutes.POST("/users", userHandler.Create)
	identityRoutes.GET("/users/:id", userHandler.GetByID)

	catalogRoutes := router.NewDomainGroup("/catalog")
	catalogRoutes.POST("/hotels", hotelHandler.Create)
	catalogRoutes.GET("/hotels", hotelHandler.List)
	catalogRoutes.GET("/hotels/:id", hotelHandler.GetByID)
	catalogRoutes.PUT("/hotels/:id", hotelHandler.Update)
	catalogRoutes.DELETE("/hotels/:id", hotelHandler.Delete)
	catalogRoutes.POST("/services", travelServiceHandler.Create)
	catalogRoutes.GET("/services", travelServiceHandler.List)
	catalogRoutes.GET("/services/:id", travelServiceHandler.GetByID)
	catalogRoutes.PUT("/services/:id", travelServiceHandler.Update)
	catalogRoutes.DELETE("/services/:id", travelServiceHandler.Delete)

	partnerRoutes := router.NewDomainGroup("/partner")
	partnerRoutes.POST("/customers", customerHandler.Create)
	partnerRoutes.GET("/customers", customerHandler.List)
	partnerRoutes.GET("/customers/:id", customerHandler.GetByID)
	partnerRoutes.PUT("/customers/:id", customerHandler.Update)
	partnerRoutes.DELETE("/customers/:id", customerHandler.Delete)

	bookingRoutes := router.NewDomainGroup("/bookings")
	bookingRoutes.POST("", bookingHandler.Create)
	bookingRoutes.GET("", bookingHandler.List)
	bookingRoutes.GET("/:id", bookingHandler.GetByID)
	bookingRoutes.GET("/number/:number", bookingHandler.GetByNumber)
	bookingRoutes.PATCH("/:id/status", bookingHandler.UpdateStatus)

	financeRoutes := router.NewDomainGroup("/finance")
	financeRoutes.POST("/payments", financeHandler.RecordPayment)
	financeRoutes.GET("/payments/booking/:id", financeHandler.ListPaymentsByBooking)
	financeRoutes.POST("/expenses", financeHandler.RecordExpense)
	financeRoutes.GET("/expenses/booking/:id", financeHandler.ListExpensesByBooking)
	financeRoutes.PUT("/exchange-rates", financeHandler.PutExchangeRate)
	financeRoutes.GET("/exchange-rates", financeHandler.ListExchangeRates)

	reportRoutes := router.NewDomainGroup("/reports")
	reportRoutes.GET("/profit-loss", reportHandler.ProfitLoss)
	reportRoutes.GET("/outstanding-invoices", reportHandler.OutstandingInvoices)
	reportRoutes.GET("/hotel-recap", reportHandler.HotelRecap)

	systemRoutes := router.NewDomainGroup("/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(identityRoutes).
		Register(catalogRoutes).
		Register(partnerRoutes).
		Register(bookingRoutes).
		Register(financeRoutes).
		Register(reportRoutes).
		Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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

// healthHandler reports liveness and database connectivity
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
