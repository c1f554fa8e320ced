package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/utils"
)

// CreateService adds an offering to the tenant's catalogue and bumps the
// denormalized total_services counter.
func (s *DefaultCatalogService) CreateService(businessID string, req models.ServiceCreate) (*models.Service, error) {
	svc := models.Service{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Services.Insert(&svc); err != nil {
		utils.GetLogger().Error("Failed to insert service", zap.Error(err))
		return nil, fmt.Errorf("failed to create service, please try again")
	}
	s.bumpCounter(businessID, "total_services", 1)
	return &svc, nil
}

func (s *DefaultCatalogService) ListServices(businessID string) ([]models.Service, error) {
	services, err := s.Services.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// UpdateService edits an offering. Existing appointments keep the snapshot
// taken at booking time; only future bookings see the new values.
func (s *DefaultCatalogService) UpdateService(businessID, serviceID string, req models.ServiceCreate) (*models.Service, error) {
	matched, err := s.Services.Update(serviceID, businessID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to update service", zap.String("serviceId", serviceID), zap.Error(err))
		return nil, fmt.Errorf("failed to update service, please try again")
	}
	if !matched {
		return nil, fmt.Errorf("service not found")
	}
	return s.Services.GetByID(serviceID)
}

func (s *DefaultCatalogService) DeleteService(businessID, serviceID string) error {
	matched, err := s.Services.Delete(serviceID, businessID)
	if err != nil {
		utils.GetLogger().Error("Failed to delete service", zap.String("serviceId", serviceID), zap.Error(err))
		return fmt.Errorf("failed to delete service, please try again")
	}
	if !matched {
		return fmt.Errorf("service not found")
	}
	s.bumpCounter(businessID, "total_services", -1)
	return nil
}

// Counter drift on failure is tolerated; the counters are display-only
// aggregates.
func (s *DefaultCatalogService) bumpCounter(businessID, field string, delta int) {
	if err := s.Businesses.IncrementCounter(businessID, field, delta); err != nil {
		utils.GetLogger().Warn("Failed to move counter",
			zap.String("businessId", businessID), zap.String("field", field), zap.Error(err))
	}
}
