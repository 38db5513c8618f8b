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

	billingapp "github.com/samplestore/backend/internal/application/billing"
	identityapp "github.com/samplestore/backend/internal/application/identity"
	storeapp "github.com/samplestore/backend/internal/application/store"
	"github.com/samplestore/backend/internal/infrastructure/config"
	"github.com/samplestore/backend/internal/infrastructure/event"
	"github.com/samplestore/backend/internal/infrastructure/gateway/authorizenet"
	"github.com/samplestore/backend/internal/infrastructure/logger"
	"github.com/samplestore/backend/internal/infrastructure/persistence"
	"github.com/samplestore/backend/internal/interfaces/http/handler"
	"github.com/samplestore/backend/internal/interfaces/http/router"
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

	log.Info("Starting store backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	profileRepo := persistence.NewGormCustomerProfileRepository(db.DB)
	paymentProfileRepo := persistence.NewGormPaymentProfileRepository(db.DB)

	// Payment gateway adapter
	gatewayAdapter, err := authorizenet.NewAdapter(&authorizenet.Config{
		LoginID:        cfg.Gateway.LoginID,
		TransactionKey: cfg.Gateway.TransactionKey,
		Sandbox:        cfg.Gateway.Sandbox,
		Endpoint:       cfg.Gateway.Endpoint,
		Timeout:        cfg.Gateway.Timeout,
	})
	if err != nil {
		log.Fatal("Failed to configure payment gateway", zap.Error(err))
	}

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)

	// Application services
	userService := identityapp.NewUserService(userRepo, eventBus)
	customerService := storeapp.NewCustomerService(customerRepo, eventBus)
	addressService := storeapp.NewAddressService(addressRepo, customerRepo)
	itemService := storeapp.NewItemService(itemRepo)
	invoiceService := storeapp.NewInvoiceService(invoiceRepo, customerRepo, itemRepo)
	profileService := billingapp.NewProfileService(profileRepo, paymentProfileRepo, gatewayAdapter, log)
	paymentProfileService := billingapp.NewPaymentProfileService(profileRepo, paymentProfileRepo, gatewayAdapter, log)
	notificationService := billingapp.NewPaymentNotificationService(eventBus)

	// Event handlers: user creation provisions a store customer, payment
	// callbacks are logged for follow-up
	userCreatedHandler := storeapp.NewUserCreatedHandler(customerService, log)
	eventBus.Subscribe(userCreatedHandler)
	paymentNotificationHandler := billingapp.NewPaymentNotificationHandler(log)
	eventBus.Subscribe(paymentNotificationHandler)

	log.Info("Event handlers registered",
		zap.Strings("user_created_events", userCreatedHandler.EventTypes()),
		zap.Strings("payment_events", paymentNotificationHandler.EventTypes()),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := router.RegisterValidators(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	// HTTP handlers and routes
	registrars := []router.RouteRegistrar{
		handler.NewUserHandler(userService, log),
		handler.NewCustomerHandler(customerService, addressService, invoiceService, log),
		handler.NewAddressHandler(addressService, log),
		handler.NewItemHandler(itemService, log),
		handler.NewInvoiceHandler(invoiceService, log),
		handler.NewProfileHandler(profileService, paymentProfileService, log),
		handler.NewNotificationHandler(notificationService, log),
	}
	engine := router.New(log, registrars).Setup()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

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
