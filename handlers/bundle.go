package handlers

import (
	userRepoPkg "slotwise/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// Business endpoints
	CreateBusinessHandler   gin.HandlerFunc
	GetMyBusinessHandler    gin.HandlerFunc
	UpdateMyBusinessHandler gin.HandlerFunc
	PublicPageHandler       gin.HandlerFunc
	ListPublicHandler       gin.HandlerFunc

	// Catalogue endpoints
	CreateServiceHandler gin.HandlerFunc
	ListServicesHandler  gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc
	CreateStaffHandler   gin.HandlerFunc
	ListStaffHandler     gin.HandlerFunc
	UpdateStaffHandler   gin.HandlerFunc
	DeleteStaffHandler   gin.HandlerFunc

	// Appointment endpoints
	BookAppointmentHandler         gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc

	// Superadmin endpoints
	AdminStatsHandler              gin.HandlerFunc
	AdminListBusinessesHandler     gin.HandlerFunc
	AdminSuspendBusinessHandler    gin.HandlerFunc
	AdminUpdateSubscriptionHandler gin.HandlerFunc
	AdminDeleteBusinessHandler     gin.HandlerFunc
	AdminLogsHandler               gin.HandlerFunc
}
