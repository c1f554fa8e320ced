package admin

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/utils"
)

// SetBusinessActive suspends or reinstates a tenant. A suspended tenant's
// booking page still resolves; only new appointments are blocked.
func (s *DefaultAdminService) SetBusinessActive(adminEmail, businessID string, active bool) (*models.Business, error) {
	matched, err := s.Businesses.SetActive(businessID, active)
	if err != nil {
		utils.GetLogger().Error("Failed to set business active flag",
			zap.String("businessId", businessID), zap.Error(err))
		return nil, fmt.Errorf("failed to update business")
	}
	if !matched {
		return nil, fmt.Errorf("business not found")
	}

	action := "business_suspended"
	if active {
		action = "business_reinstated"
	}
	s.audit(action, adminEmail, map[string]any{"business_id": businessID}, "admin")

	return s.Businesses.GetByID(businessID)
}

// UpdateSubscription changes a tenant's plan and expiry. An expiry in the
// future immediately restores booking eligibility for an expired tenant.
func (s *DefaultAdminService) UpdateSubscription(adminEmail, businessID string, req models.SubscriptionUpdate) (*models.Business, error) {
	matched, err := s.Businesses.SetSubscription(businessID, req.SubscriptionPlan, req.SubscriptionExpires.UTC())
	if err != nil {
		utils.GetLogger().Error("Failed to update subscription",
			zap.String("businessId", businessID), zap.Error(err))
		return nil, fmt.Errorf("failed to update subscription")
	}
	if !matched {
		return nil, fmt.Errorf("business not found")
	}

	s.audit("subscription_updated", adminEmail, map[string]any{
		"business_id": businessID,
		"plan":        req.SubscriptionPlan,
		"expires":     req.SubscriptionExpires.UTC().Format(time.RFC3339),
	}, "admin")

	return s.Businesses.GetByID(businessID)
}

// DeleteBusiness removes the tenant's services, staff, appointments and
// owner accounts, then the business document itself.
func (s *DefaultAdminService) DeleteBusiness(adminEmail, businessID string) error {
	logger := utils.GetLogger()

	biz, err := s.Businesses.GetByID(businessID)
	if err != nil {
		logger.Error("Failed to fetch business for deletion",
			zap.String("businessId", businessID), zap.Error(err))
		return fmt.Errorf("failed to delete business")
	}
	if biz == nil {
		return fmt.Errorf("business not found")
	}

	if err := s.Services.DeleteByBusiness(businessID); err != nil {
		return fmt.Errorf("failed to delete services: %w", err)
	}
	if err := s.Staff.DeleteByBusiness(businessID); err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if err := s.Appointments.DeleteByBusiness(businessID); err != nil {
		return fmt.Errorf("failed to delete appointments: %w", err)
	}
	if err := s.Users.DeleteByBusiness(businessID); err != nil {
		return fmt.Errorf("failed to delete users: %w", err)
	}
	if _, err := s.Businesses.Delete(businessID); err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}

	s.audit("business_deleted", adminEmail, map[string]any{
		"business_id": businessID,
		"name":        biz.Name,
	}, "warning")

	return nil
}

// Logs returns the newest audit entries, optionally filtered by type.
func (s *DefaultAdminService) Logs(limit int64, logType string) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	logs, err := s.Audit.List(limit, logType)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}

func (s *DefaultAdminService) audit(action, email string, details map[string]any, logType string) {
	entry := &models.AuditLog{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		UserEmail: email,
		Details:   details,
		Type:      logType,
	}
	if err := s.Audit.Insert(entry); err != nil {
		utils.GetLogger().Warn("Failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
