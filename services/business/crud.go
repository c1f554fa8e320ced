package business

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slotwise/config"
	"slotwise/models"
	"slotwise/utils"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreateBusiness registers a new tenant on a trial subscription and links it
// to the owner's account. The slug becomes the public booking URL and must be
// unique across the platform.
func (s *DefaultBusinessService) CreateBusiness(ownerID string, req models.BusinessCreate) (*models.Business, error) {
	logger := utils.GetLogger()

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("slug may only contain lowercase letters, digits and hyphens")
	}
	taken, err := s.Businesses.SlugTaken(slug, "")
	if err != nil {
		logger.Error("Failed to check slug availability", zap.Error(err))
		return nil, fmt.Errorf("failed to create business, please try again")
	}
	if taken {
		return nil, fmt.Errorf("slug %q is already taken", slug)
	}

	owner, err := s.Users.GetByID(ownerID)
	if err != nil {
		logger.Error("Failed to fetch owner account", zap.Error(err))
		return nil, fmt.Errorf("failed to create business, please try again")
	}
	ownerEmail := ""
	if owner != nil {
		ownerEmail = owner.Email
	}

	now := time.Now().UTC()
	biz := models.Business{
		ID:                  uuid.New().String(),
		Name:                req.Name,
		Slug:                slug,
		Description:         req.Description,
		LogoURL:             req.LogoURL,
		Phone:               req.Phone,
		Address:             req.Address,
		WorkingHours:        req.WorkingHours,
		CreatedAt:           now,
		OwnerEmail:          ownerEmail,
		SubscriptionPlan:    "trial",
		SubscriptionExpires: now.Add(config.TrialPeriod()),
		IsActive:            true,
	}
	if err := s.Businesses.Insert(&biz); err != nil {
		logger.Error("Failed to insert business", zap.Error(err))
		return nil, fmt.Errorf("failed to create business, please try again")
	}

	if owner != nil {
		if err := s.Users.SetBusiness(owner.ID, biz.ID); err != nil {
			logger.Warn("Failed to link owner to business",
				zap.String("userId", owner.ID), zap.String("businessId", biz.ID), zap.Error(err))
		}
	}

	s.audit("business_created", ownerEmail, map[string]any{
		"business_id": biz.ID,
		"name":        biz.Name,
		"slug":        biz.Slug,
	})

	return &biz, nil
}

// UpdateBusiness applies profile changes. The slug stays unique; the tenant's
// own current slug does not count as a collision.
func (s *DefaultBusinessService) UpdateBusiness(businessID string, req models.BusinessCreate) (*models.Business, error) {
	logger := utils.GetLogger()

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("slug may only contain lowercase letters, digits and hyphens")
	}
	taken, err := s.Businesses.SlugTaken(slug, businessID)
	if err != nil {
		logger.Error("Failed to check slug availability", zap.Error(err))
		return nil, fmt.Errorf("failed to update business, please try again")
	}
	if taken {
		return nil, fmt.Errorf("slug %q is already taken", slug)
	}

	req.Slug = slug
	matched, err := s.Businesses.UpdateProfile(businessID, req)
	if err != nil {
		logger.Error("Failed to update business", zap.String("businessId", businessID), zap.Error(err))
		return nil, fmt.Errorf("failed to update business, please try again")
	}
	if !matched {
		return nil, fmt.Errorf("business not found")
	}
	return s.GetBusinessByID(businessID)
}

func (s *DefaultBusinessService) GetBusinessByID(businessID string) (*models.Business, error) {
	biz, err := s.Businesses.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	if biz == nil {
		return nil, fmt.Errorf("business not found")
	}
	return biz, nil
}

// GetPublicPage resolves a booking-page slug. Suspended and expired tenants
// still resolve here; booking eligibility is enforced at appointment time.
func (s *DefaultBusinessService) GetPublicPage(slug string) (*PublicPage, error) {
	biz, err := s.Businesses.GetBySlug(strings.ToLower(slug))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	if biz == nil {
		return nil, fmt.Errorf("business not found")
	}

	services, err := s.Services.ListByBusiness(biz.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	staff, err := s.Staff.ListByBusiness(biz.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	return &PublicPage{Business: *biz, Services: services, Staff: staff}, nil
}

// ListPublic returns the directory of businesses open for booking.
func (s *DefaultBusinessService) ListPublic() ([]models.Business, error) {
	businesses, err := s.Businesses.ListEligible(time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	return businesses, nil
}

func (s *DefaultBusinessService) audit(action, email string, details map[string]any) {
	if s.Audit == nil {
		return
	}
	entry := &models.AuditLog{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		UserEmail: email,
		Details:   details,
		Type:      "info",
	}
	if err := s.Audit.Insert(entry); err != nil {
		utils.GetLogger().Warn("Failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
