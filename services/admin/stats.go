package admin

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/utils"
)

// PlatformStats aggregates the superadmin dashboard numbers. Monthly revenue
// is the sum of completed appointment prices in the current calendar month.
func (s *DefaultAdminService) PlatformStats() (*models.PlatformStats, error) {
	logger := utils.GetLogger()
	now := time.Now().UTC()

	total, err := s.Businesses.Count()
	if err != nil {
		logger.Error("Failed to count businesses", zap.Error(err))
		return nil, fmt.Errorf("failed to compute platform stats")
	}
	active, err := s.Businesses.CountActive()
	if err != nil {
		logger.Error("Failed to count active businesses", zap.Error(err))
		return nil, fmt.Errorf("failed to compute platform stats")
	}
	users, err := s.Users.Count()
	if err != nil {
		logger.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to compute platform stats")
	}
	appointments, err := s.Appointments.Count()
	if err != nil {
		logger.Error("Failed to count appointments", zap.Error(err))
		return nil, fmt.Errorf("failed to compute platform stats")
	}
	today, err := s.Appointments.CountByDate(now.Format("2006-01-02"))
	if err != nil {
		logger.Error("Failed to count today's appointments", zap.Error(err))
		return nil, fmt.Errorf("failed to compute platform stats")
	}
	revenue, err := s.Appointments.SumCompletedRevenue(now.Format("2006-01"))
	if err != nil {
		logger.Error("Failed to sum monthly revenue", zap.Error(err))
		return nil, fmt.Errorf("failed to compute platform stats")
	}

	return &models.PlatformStats{
		TotalBusinesses:    total,
		ActiveBusinesses:   active,
		InactiveBusinesses: total - active,
		TotalUsers:         users,
		TotalAppointments:  appointments,
		TodayAppointments:  today,
		MonthlyRevenue:     revenue,
	}, nil
}

// ListBusinessDetails builds the per-tenant rows of the superadmin table,
// with live per-tenant counts rather than the denormalized counters.
func (s *DefaultAdminService) ListBusinessDetails() ([]models.BusinessDetail, error) {
	logger := utils.GetLogger()
	now := time.Now().UTC()

	businesses, err := s.Businesses.ListAll()
	if err != nil {
		logger.Error("Failed to list businesses", zap.Error(err))
		return nil, fmt.Errorf("failed to list businesses")
	}

	details := make([]models.BusinessDetail, 0, len(businesses))
	for _, b := range businesses {
		staffCount, err := s.Staff.CountByBusiness(b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count staff for business %s: %w", b.ID, err)
		}
		serviceCount, err := s.Services.CountByBusiness(b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count services for business %s: %w", b.ID, err)
		}
		appointmentCount, err := s.Appointments.CountByBusiness(b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count appointments for business %s: %w", b.ID, err)
		}

		ownerEmail := b.OwnerEmail
		if ownerEmail == "" {
			// Legacy documents may predate the owner_email field.
			if owner, err := s.Users.FindOwner(b.ID); err == nil && owner != nil {
				ownerEmail = owner.Email
			}
		}

		daysRemaining := int(b.SubscriptionExpires.Sub(now).Hours() / 24)
		if daysRemaining < 0 {
			daysRemaining = 0
		}

		details = append(details, models.BusinessDetail{
			ID:                  b.ID,
			Name:                b.Name,
			OwnerEmail:          ownerEmail,
			CreatedAt:           b.CreatedAt,
			LastLogin:           b.LastLogin,
			StaffCount:          staffCount,
			ServiceCount:        serviceCount,
			AppointmentCount:    appointmentCount,
			SubscriptionPlan:    b.SubscriptionPlan,
			SubscriptionExpires: b.SubscriptionExpires,
			DaysRemaining:       daysRemaining,
			IsActive:            b.IsActive,
		})
	}
	return details, nil
}
