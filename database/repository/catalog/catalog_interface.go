package catalogRepo

import "slotwise/models"

// ServiceRepository defines data access for the service catalogue of a
// business. Lookup methods return (nil, nil) when no document matches.
type ServiceRepository interface {
	Insert(s *models.Service) error
	GetByID(id string) (*models.Service, error)
	ListByBusiness(businessID string) ([]models.Service, error)
	// Update applies the payload to a service owned by businessID,
	// reporting whether a document matched.
	Update(id, businessID string, data models.ServiceCreate) (bool, error)
	Delete(id, businessID string) (bool, error)
	DeleteByBusiness(businessID string) error
	CountByBusiness(businessID string) (int64, error)
}

// StaffRepository defines data access for a business's staff roster.
type StaffRepository interface {
	Insert(s *models.Staff) error
	GetByID(id string) (*models.Staff, error)
	ListByBusiness(businessID string) ([]models.Staff, error)
	Update(id, businessID string, data models.StaffCreate) (bool, error)
	Delete(id, businessID string) (bool, error)
	DeleteByBusiness(businessID string) error
	CountByBusiness(businessID string) (int64, error)
}
