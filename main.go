package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"slotwise/config"
	"slotwise/database"
	appointmentRepoPkg "slotwise/database/repository/appointment"
	auditRepoPkg "slotwise/database/repository/audit"
	businessRepoPkg "slotwise/database/repository/business"
	catalogRepoPkg "slotwise/database/repository/catalog"
	userRepoPkg "slotwise/database/repository/user"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/routes"
	"slotwise/services/account"
	"slotwise/services/admin"
	"slotwise/services/business"
	"slotwise/services/catalog"
	"slotwise/services/notification"
	"slotwise/services/scheduling"
	"slotwise/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	db, disconnect, err := database.Connect(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	businessRepo := businessRepoPkg.NewMongoBusinessRepo(db)
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo(db)
	staffRepo := catalogRepoPkg.NewMongoStaffRepo(db)
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	auditRepo := auditRepoPkg.NewMongoAuditRepo(db)

	// Notification queue: dispatcher enqueues, worker drains.
	dispatcher := notification.NewDispatcher()
	notification.InitWorker()

	// services.
	accountService := &account.DefaultAccountService{
		Users: userRepo,
		Audit: auditRepo,
	}
	businessService := &business.DefaultBusinessService{
		Businesses: businessRepo,
		Services:   serviceRepo,
		Staff:      staffRepo,
		Users:      userRepo,
		Audit:      auditRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Services:   serviceRepo,
		Staff:      staffRepo,
		Businesses: businessRepo,
	}
	schedulingEngine := scheduling.NewDefaultEngine(
		businessRepo,
		serviceRepo,
		staffRepo,
		appointmentRepo,
		dispatcher,
	)
	adminService := &admin.DefaultAdminService{
		Businesses:   businessRepo,
		Services:     serviceRepo,
		Staff:        staffRepo,
		Appointments: appointmentRepo,
		Users:        userRepo,
		Audit:        auditRepo,
	}

	authHandler := handlers.NewAuthHandler(accountService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	appointmentHandler := handlers.NewAppointmentHandler(schedulingEngine, businessRepo, appointmentRepo)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		MeHandler:       authHandler.MeHandler,

		// Business endpoints.
		CreateBusinessHandler:   businessHandler.CreateBusinessHandler,
		GetMyBusinessHandler:    businessHandler.GetMyBusinessHandler,
		UpdateMyBusinessHandler: businessHandler.UpdateMyBusinessHandler,
		PublicPageHandler:       businessHandler.PublicPageHandler,
		ListPublicHandler:       businessHandler.ListPublicHandler,

		// Catalogue endpoints.
		CreateServiceHandler: catalogHandler.CreateServiceHandler,
		ListServicesHandler:  catalogHandler.ListServicesHandler,
		UpdateServiceHandler: catalogHandler.UpdateServiceHandler,
		DeleteServiceHandler: catalogHandler.DeleteServiceHandler,
		CreateStaffHandler:   catalogHandler.CreateStaffHandler,
		ListStaffHandler:     catalogHandler.ListStaffHandler,
		UpdateStaffHandler:   catalogHandler.UpdateStaffHandler,
		DeleteStaffHandler:   catalogHandler.DeleteStaffHandler,

		// Appointment endpoints.
		BookAppointmentHandler:         appointmentHandler.BookAppointmentHandler,
		ListAppointmentsHandler:        appointmentHandler.ListAppointmentsHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatusHandler,

		// Superadmin endpoints.
		AdminStatsHandler:              adminHandler.StatsHandler,
		AdminListBusinessesHandler:     adminHandler.ListBusinessesHandler,
		AdminSuspendBusinessHandler:    adminHandler.SuspendBusinessHandler,
		AdminUpdateSubscriptionHandler: adminHandler.UpdateSubscriptionHandler,
		AdminDeleteBusinessHandler:     adminHandler.DeleteBusinessHandler,
		AdminLogsHandler:               adminHandler.LogsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
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
	if err := dispatcher.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close notification dispatcher: %v", err)
	}
	if err := disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
