package catalog

import (
	businessRepo "slotwise/database/repository/business"
	catalogRepo "slotwise/database/repository/catalog"
	"slotwise/models"
)

// CatalogService manages a tenant's service offerings and staff roster. All
// operations are scoped to the owning business; a tenant can never touch
// another tenant's catalogue.
type CatalogService interface {
	CreateService(businessID string, req models.ServiceCreate) (*models.Service, error)
	ListServices(businessID string) ([]models.Service, error)
	UpdateService(businessID, serviceID string, req models.ServiceCreate) (*models.Service, error)
	DeleteService(businessID, serviceID string) error

	CreateStaff(businessID string, req models.StaffCreate) (*models.Staff, error)
	ListStaff(businessID string) ([]models.Staff, error)
	UpdateStaff(businessID, staffID string, req models.StaffCreate) (*models.Staff, error)
	DeleteStaff(businessID, staffID string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Services   catalogRepo.ServiceRepository
	Staff      catalogRepo.StaffRepository
	Businesses businessRepo.BusinessRepository
}
