package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slotwise/handlers"
	"slotwise/middleware"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
	}
}

// RegisterPublicRoutes registers the customer-facing booking surface. No
// authentication; customers book anonymously.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public")
	{
		api.GET("/businesses", hb.ListPublicHandler)
		api.GET("/businesses/:slug", hb.PublicPageHandler)
		api.POST("/businesses/:slug/appointments", hb.BookAppointmentHandler)
	}
}

// RegisterBusinessRoutes registers the tenant dashboard endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBusinessHandler)
		api.GET("/me", hb.GetMyBusinessHandler)
		api.PUT("/me", hb.UpdateMyBusinessHandler)

		api.POST("/services", hb.CreateServiceHandler)
		api.GET("/services", hb.ListServicesHandler)
		api.PUT("/services/:id", hb.UpdateServiceHandler)
		api.DELETE("/services/:id", hb.DeleteServiceHandler)

		api.POST("/staff", hb.CreateStaffHandler)
		api.GET("/staff", hb.ListStaffHandler)
		api.PUT("/staff/:id", hb.UpdateStaffHandler)
		api.DELETE("/staff/:id", hb.DeleteStaffHandler)

		api.GET("/appointments", hb.ListAppointmentsHandler)
		api.PATCH("/appointments/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for superadmin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.SuperAdminMiddleware())
		adminGroup.GET("/stats", hb.AdminStatsHandler)
		adminGroup.GET("/businesses", hb.AdminListBusinessesHandler)
		adminGroup.PATCH("/businesses/:id/active", hb.AdminSuspendBusinessHandler)
		adminGroup.PUT("/businesses/:id/subscription", hb.AdminUpdateSubscriptionHandler)
		adminGroup.DELETE("/businesses/:id", hb.AdminDeleteBusinessHandler)
		adminGroup.GET("/logs", hb.AdminLogsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SlotWise"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
