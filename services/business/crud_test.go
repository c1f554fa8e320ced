package business

import (
	"strings"
	"testing"
	"time"

	"slotwise/config"
	auditRepo "slotwise/database/repository/audit"
	businessRepo "slotwise/database/repository/business"
	catalogRepo "slotwise/database/repository/catalog"
	userRepo "slotwise/database/repository/user"
	"slotwise/models"
)

type stubBusinessRepo struct {
	businessRepo.BusinessRepository

	inserted  []models.Business
	takenSlug string
	byID      map[string]*models.Business
	bySlug    map[string]*models.Business
}

func (r *stubBusinessRepo) Insert(b *models.Business) error {
	r.inserted = append(r.inserted, *b)
	return nil
}

func (r *stubBusinessRepo) SlugTaken(slug, excludeID string) (bool, error) {
	return slug == r.takenSlug, nil
}

func (r *stubBusinessRepo) GetByID(id string) (*models.Business, error) {
	return r.byID[id], nil
}

func (r *stubBusinessRepo) GetBySlug(slug string) (*models.Business, error) {
	return r.bySlug[slug], nil
}

type stubServiceRepo struct {
	catalogRepo.ServiceRepository
	services []models.Service
}

func (r *stubServiceRepo) ListByBusiness(string) ([]models.Service, error) {
	return r.services, nil
}

type stubStaffRepo struct {
	catalogRepo.StaffRepository
	staff []models.Staff
}

func (r *stubStaffRepo) ListByBusiness(string) ([]models.Staff, error) {
	return r.staff, nil
}

type stubUserRepo struct {
	userRepo.UserRepository

	users  map[string]*models.User
	linked map[string]string
}

func (r *stubUserRepo) GetByID(id string) (*models.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) SetBusiness(id, businessID string) error {
	if r.linked == nil {
		r.linked = make(map[string]string)
	}
	r.linked[id] = businessID
	return nil
}

type stubAuditRepo struct {
	auditRepo.AuditRepository
	entries []models.AuditLog
}

func (r *stubAuditRepo) Insert(entry *models.AuditLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func newService(businesses *stubBusinessRepo, users *stubUserRepo) (*DefaultBusinessService, *stubAuditRepo) {
	audit := &stubAuditRepo{}
	return &DefaultBusinessService{
		Businesses: businesses,
		Services:   &stubServiceRepo{},
		Staff:      &stubStaffRepo{},
		Users:      users,
		Audit:      audit,
	}, audit
}

func TestCreateBusiness(t *testing.T) {
	config.AppConfig.TrialDays = 30

	businesses := &stubBusinessRepo{}
	users := &stubUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", Email: "owner@example.com"},
	}}
	svc, audit := newService(businesses, users)

	biz, err := svc.CreateBusiness("user-1", models.BusinessCreate{
		Name: "Shear Genius",
		Slug: "Shear-Genius",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if biz.Slug != "shear-genius" {
		t.Fatalf("slug not normalized: %q", biz.Slug)
	}
	if biz.OwnerEmail != "owner@example.com" {
		t.Fatalf("owner email = %q", biz.OwnerEmail)
	}
	if biz.SubscriptionPlan != "trial" || !biz.IsActive {
		t.Fatalf("new business should start on an active trial: %+v", biz)
	}
	wantExpiry := time.Now().UTC().Add(30 * 24 * time.Hour)
	if diff := biz.SubscriptionExpires.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("trial expiry = %v, want ~%v", biz.SubscriptionExpires, wantExpiry)
	}
	if users.linked["user-1"] != biz.ID {
		t.Fatalf("owner not linked to the new business")
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != "business_created" {
		t.Fatalf("expected a business_created audit entry, got %+v", audit.entries)
	}
}

func TestCreateBusinessRejectsBadSlugs(t *testing.T) {
	businesses := &stubBusinessRepo{takenSlug: "taken"}
	users := &stubUserRepo{users: map[string]*models.User{}}
	svc, _ := newService(businesses, users)

	for _, slug := range []string{"has space", "UPPER!", "trailing-", "-leading", "a--b", ""} {
		// Leading/trailing whitespace is trimmed and case folded before
		// validation, so only genuinely malformed slugs fail.
		if _, err := svc.CreateBusiness("user-1", models.BusinessCreate{Name: "X", Slug: slug}); err == nil {
			t.Errorf("slug %q should be rejected", slug)
		}
	}

	if _, err := svc.CreateBusiness("user-1", models.BusinessCreate{Name: "X", Slug: "taken"}); err == nil {
		t.Fatal("duplicate slug should be rejected")
	} else if !strings.Contains(err.Error(), "taken") {
		t.Fatalf("duplicate slug error should name the slug: %v", err)
	}

	if len(businesses.inserted) != 0 {
		t.Fatalf("rejected creates wrote %d businesses", len(businesses.inserted))
	}
}

func TestGetPublicPage(t *testing.T) {
	biz := &models.Business{ID: "biz-1", Name: "Shear Genius", Slug: "shear-genius"}
	businesses := &stubBusinessRepo{bySlug: map[string]*models.Business{"shear-genius": biz}}
	users := &stubUserRepo{users: map[string]*models.User{}}

	audit := &stubAuditRepo{}
	svc := &DefaultBusinessService{
		Businesses: businesses,
		Services:   &stubServiceRepo{services: []models.Service{{ID: "svc-cut", Name: "Haircut"}}},
		Staff:      &stubStaffRepo{staff: []models.Staff{{ID: "staff-ada", Name: "Ada"}}},
		Users:      users,
		Audit:      audit,
	}

	page, err := svc.GetPublicPage("Shear-Genius")
	if err != nil {
		t.Fatalf("public page: %v", err)
	}
	if page.Business.ID != "biz-1" || len(page.Services) != 1 || len(page.Staff) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}

	if _, err := svc.GetPublicPage("nope"); err == nil {
		t.Fatal("unknown slug should fail")
	}
}
