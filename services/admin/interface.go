package admin

import (
	appointmentRepo "slotwise/database/repository/appointment"
	auditRepo "slotwise/database/repository/audit"
	businessRepo "slotwise/database/repository/business"
	catalogRepo "slotwise/database/repository/catalog"
	userRepo "slotwise/database/repository/user"
	"slotwise/models"
)

// AdminService is the superadmin surface: platform stats, tenant
// administration and the audit log.
type AdminService interface {
	PlatformStats() (*models.PlatformStats, error)
	ListBusinessDetails() ([]models.BusinessDetail, error)
	// SetBusinessActive suspends or reinstates a tenant. Suspension takes
	// effect on the next booking attempt.
	SetBusinessActive(adminEmail, businessID string, active bool) (*models.Business, error)
	UpdateSubscription(adminEmail, businessID string, req models.SubscriptionUpdate) (*models.Business, error)
	// DeleteBusiness removes a tenant and everything it owns.
	DeleteBusiness(adminEmail, businessID string) error
	Logs(limit int64, logType string) ([]models.AuditLog, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Businesses   businessRepo.BusinessRepository
	Services     catalogRepo.ServiceRepository
	Staff        catalogRepo.StaffRepository
	Appointments appointmentRepo.AppointmentRepository
	Users        userRepo.UserRepository
	Audit        auditRepo.AuditRepository
}
