package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appconfigapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/appconfig"
	billingapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/billing"
	companyapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/company"
	identityapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/identity"
	translationapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/translation"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/billing"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/auth"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/cache"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/config"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/logger"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/notification"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/payment"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/persistence"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/storage"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/interfaces/http/handler"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/interfaces/http/middleware"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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

	log.Info("Starting translator web server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Webhook delivery dedupe store. Redis in shared deployments; the
	// in-memory store only dedupes within a single process.
	var idempotency shared.IdempotencyStore
	if cfg.Redis.Enabled {
		idempotency, err = cache.NewRedisIdempotencyStore(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		log.Info("Redis dedupe store connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		idempotency = cache.NewInMemoryIdempotencyStore()
		log.Warn("Using in-memory dedupe store; duplicate webhook side effects are only suppressed per process")
	}
	defer func() {
		_ = idempotency.Close()
	}()

	var objectStorage translationapp.ObjectStorageService
	if cfg.Storage.Bucket != "" {
		objectStorage, err = storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		log.Info("Object storage ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("No storage bucket configured; using stub object storage")
	}

	var gateway billing.Gateway
	if cfg.Gateway.AccessToken != "" {
		gateway = payment.NewSquareAdapter(cfg.Gateway)
		log.Info("Payment gateway ready", zap.String("base_url", cfg.Gateway.BaseURL))
	} else {
		gateway = payment.NewStubGateway()
		log.Warn("No gateway access token configured; using stub payment gateway")
	}

	tokens := auth.NewTokenService(cfg.Auth)

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	sessionRepo := persistence.NewGormSessionRepository(db.DB)
	apiKeyRepo := persistence.NewGormAPIKeyRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	companyTxnRepo := persistence.NewGormCompanyTransactionRepository(db.DB)
	translationTxnRepo := persistence.NewGormTranslationTransactionRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	auditLogRepo := persistence.NewGormAuditLogRepository(db.DB)
	notificationLogRepo := persistence.NewGormNotificationLogRepository(db.DB)
	appConfigRepo := persistence.NewGormAppConfigRepository(db.DB)

	notifier := notification.NewLoggingNotifier(cfg.Notification, notificationLogRepo, log)

	// Application services
	authSvc := identityapp.NewAuthService(userRepo, sessionRepo, tokens, log)
	apiKeySvc := identityapp.NewAPIKeyService(apiKeyRepo, log)
	companySvc := companyapp.NewService(companyRepo, companyTxnRepo, log)
	txnSvc := translationapp.NewTransactionService(translationTxnRepo, companyTxnRepo, companyRepo, log)
	storageLayout := translationapp.StorageLayout{
		TempPrefix:  cfg.Storage.TempPrefix,
		FinalPrefix: cfg.Storage.FinalPrefix,
	}
	webhookSvc := translationapp.NewWebhookService(
		translationTxnRepo, companyTxnRepo, idempotency, objectStorage, storageLayout, notifier, auditLogRepo, log)
	uploadSvc := translationapp.NewUploadService(objectStorage, storageLayout, cfg.Storage.PresignExpiration, log)
	paymentSvc := billingapp.NewPaymentService(paymentRepo, translationTxnRepo, companyTxnRepo, gateway, log)
	refundSvc := billingapp.NewRefundService(translationTxnRepo, companyTxnRepo, gateway, log)
	appConfigSvc := appconfigapp.NewService(appConfigRepo, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	apiKeyHandler := handler.NewAPIKeyHandler(apiKeySvc)
	companyHandler := handler.NewCompanyHandler(companySvc)
	txnHandler := handler.NewTransactionHandler(txnSvc)
	webhookHandler := handler.NewWebhookHandler(webhookSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc)
	refundHandler := handler.NewRefundHandler(refundSvc)
	appConfigHandler := handler.NewAppConfigHandler(appConfigSvc)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.GET("/health", healthHandler(db))

	sessionRequired := middleware.RequireSession(tokens, authSvc)
	apiKeyRequired := middleware.RequireAPIKey(apiKeySvc)

	// Login gets its own tighter rate budget
	loginHandlers := []gin.HandlerFunc{authHandler.Login}
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		loginHandlers = append([]gin.HandlerFunc{middleware.RateLimit(authLimiter)}, loginHandlers...)
	}

	authRoutes := router.NewGroup("/auth").
		POST("/login", loginHandlers...).
		POST("/logout", sessionRequired, authHandler.Logout)

	fileRoutes := router.NewGroup("/files").
		Use(sessionRequired).
		POST("", uploadHandler.Register)

	transactionRoutes := router.NewGroup("/transactions").
		Use(sessionRequired).
		POST("", txnHandler.Create).
		GET("", txnHandler.ListMine).
		GET("/:transaction_id", txnHandler.Get).
		GET("/:transaction_id/payments", paymentHandler.ListForTransaction).
		POST("/:transaction_id/refunds", refundHandler.RefundIndividual)

	companyTxnRoutes := router.NewGroup("/company-transactions").
		Use(sessionRequired).
		POST("/:transaction_id/refunds", refundHandler.RefundCompany)

	companyRoutes := router.NewGroup("/companies").
		Use(sessionRequired).
		POST("", companyHandler.Create).
		GET("", companyHandler.List).
		GET("/:company_id", companyHandler.Get).
		GET("/:company_id/transactions", companyHandler.ListTransactions)

	paymentRoutes := router.NewGroup("/payments").
		Use(sessionRequired).
		POST("", paymentHandler.Create).
		GET("/:payment_id", paymentHandler.Get)

	webhookRoutes := router.NewGroup("/webhooks").
		Use(apiKeyRequired).
		POST("/translation", webhookHandler.Submit)

	apiKeyRoutes := router.NewGroup("/api-keys").
		Use(sessionRequired).
		POST("", apiKeyHandler.Create).
		GET("", apiKeyHandler.List).
		DELETE("/:key_id", apiKeyHandler.Revoke)

	configRoutes := router.NewGroup("/config").
		Use(sessionRequired).
		GET("", appConfigHandler.List).
		GET("/:key", appConfigHandler.Get).
		PUT("/:key", appConfigHandler.Set).
		DELETE("/:key", appConfigHandler.Delete)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(authRoutes).
		Register(fileRoutes).
		Register(transactionRoutes).
		Register(companyTxnRoutes).
		Register(companyRoutes).
		Register(paymentRoutes).
		Register(webhookRoutes).
		Register(apiKeyRoutes).
		Register(configRoutes)
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
