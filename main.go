package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorportal/auth"
	"doctorportal/config"
	"doctorportal/database"
	bookingRepoPkg "doctorportal/database/repository/booking"
	doctorRepoPkg "doctorportal/database/repository/doctor"
	paymentRepoPkg "doctorportal/database/repository/payment"
	serviceRepoPkg "doctorportal/database/repository/service"
	userRepoPkg "doctorportal/database/repository/user"
	"doctorportal/handlers"
	"doctorportal/middleware"
	"doctorportal/payments"
	"doctorportal/routes"
	"doctorportal/services/account"
	"doctorportal/services/appointment"
	"doctorportal/services/catalog"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("main: invalid configuration: %v", err)
	}

	utils.InitializeLogger(cfg.IsProduction())
	logger := utils.GetLogger()

	client, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := client.Database(cfg.DatabaseName)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimit(cfg.MaxRequestsPerMin))

	// External collaborators.
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, tokenTTL)
	gateway := payments.NewStripeGateway(cfg.StripeKey)

	// Repositories.
	svcRepo := serviceRepoPkg.NewMongoServiceRepo(db)
	bkRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	usRepo := userRepoPkg.NewMongoUserRepo(db)
	drRepo := doctorRepoPkg.NewMongoDoctorRepo(db)
	payRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	// Services.
	catalogService := &catalog.DefaultCatalogService{
		Services: svcRepo,
		Bookings: bkRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Bookings: bkRepo,
		Payments: payRepo,
	}
	accountService := &account.DefaultAccountService{
		Users:   usRepo,
		Doctors: drRepo,
		Tokens:  tokenManager,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		TokenManager: tokenManager,
		UserRepo:     usRepo,
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Booking:      handlers.NewBookingHandler(appointmentService),
		Payment:      handlers.NewPaymentHandler(gateway),
		User:         handlers.NewUserHandler(accountService),
		Doctor:       handlers.NewDoctorHandler(accountService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
