package businessRepo

import (
	"time"

	"slotwise/models"
)

// BusinessRepository defines data access methods for business documents.
// Lookup methods return (nil, nil) when no document matches.
type BusinessRepository interface {
	Insert(b *models.Business) error
	GetByID(id string) (*models.Business, error)
	GetBySlug(slug string) (*models.Business, error)
	// SlugTaken reports whether another business (id != excludeID) already
	// owns the slug. Pass excludeID "" for create-time checks.
	SlugTaken(slug, excludeID string) (bool, error)
	UpdateProfile(id string, data models.BusinessCreate) (bool, error)
	// ListEligible returns active businesses whose subscription has not
	// expired as of now.
	ListEligible(now time.Time) ([]models.Business, error)
	ListAll() ([]models.Business, error)
	SetActive(id string, active bool) (bool, error)
	SetSubscription(id, plan string, expires time.Time) (bool, error)
	// IncrementCounter atomically moves one of the denormalized aggregate
	// counters (total_appointments, total_staff, total_services).
	IncrementCounter(id, field string, delta int) error
	Delete(id string) (bool, error)
	Count() (int64, error)
	CountActive() (int64, error)
}
