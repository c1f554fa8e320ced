package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/utils"
)

// CreateStaff adds a team member. Working days default to Monday through
// Friday when the payload leaves them empty.
func (s *DefaultCatalogService) CreateStaff(businessID string, req models.StaffCreate) (*models.Staff, error) {
	workingDays := req.WorkingDays
	if len(workingDays) == 0 {
		workingDays = models.DefaultWorkingDays()
	}
	services := req.Services
	if services == nil {
		services = []string{}
	}

	member := models.Staff{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Services:    services,
		WorkingDays: workingDays,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Staff.Insert(&member); err != nil {
		utils.GetLogger().Error("Failed to insert staff member", zap.Error(err))
		return nil, fmt.Errorf("failed to create staff member, please try again")
	}
	s.bumpCounter(businessID, "total_staff", 1)
	return &member, nil
}

func (s *DefaultCatalogService) ListStaff(businessID string) ([]models.Staff, error) {
	staff, err := s.Staff.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (s *DefaultCatalogService) UpdateStaff(businessID, staffID string, req models.StaffCreate) (*models.Staff, error) {
	matched, err := s.Staff.Update(staffID, businessID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to update staff member", zap.String("staffId", staffID), zap.Error(err))
		return nil, fmt.Errorf("failed to update staff member, please try again")
	}
	if !matched {
		return nil, fmt.Errorf("staff member not found")
	}
	return s.Staff.GetByID(staffID)
}

// DeleteStaff removes a team member. Existing appointments keep the
// denormalized staff name; past bookings are not rewritten.
func (s *DefaultCatalogService) DeleteStaff(businessID, staffID string) error {
	matched, err := s.Staff.Delete(staffID, businessID)
	if err != nil {
		utils.GetLogger().Error("Failed to delete staff member", zap.String("staffId", staffID), zap.Error(err))
		return fmt.Errorf("failed to delete staff member, please try again")
	}
	if !matched {
		return fmt.Errorf("staff member not found")
	}
	s.bumpCounter(businessID, "total_staff", -1)
	return nil
}
