package business

import (
	auditRepo "slotwise/database/repository/audit"
	businessRepo "slotwise/database/repository/business"
	catalogRepo "slotwise/database/repository/catalog"
	userRepo "slotwise/database/repository/user"
	"slotwise/models"
)

// BusinessService manages tenant profiles and the public booking pages.
type BusinessService interface {
	CreateBusiness(ownerID string, req models.BusinessCreate) (*models.Business, error)
	UpdateBusiness(businessID string, req models.BusinessCreate) (*models.Business, error)
	GetBusinessByID(businessID string) (*models.Business, error)
	// GetPublicPage resolves a booking-page slug to the business profile
	// with its service catalogue and staff roster.
	GetPublicPage(slug string) (*PublicPage, error)
	// ListPublic returns every business currently able to accept bookings.
	ListPublic() ([]models.Business, error)
}

// PublicPage is the payload behind a public booking URL.
type PublicPage struct {
	Business models.Business  `json:"business"`
	Services []models.Service `json:"services"`
	Staff    []models.Staff   `json:"staff"`
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Businesses businessRepo.BusinessRepository
	Services   catalogRepo.ServiceRepository
	Staff      catalogRepo.StaffRepository
	Users      userRepo.UserRepository
	Audit      auditRepo.AuditRepository
}
