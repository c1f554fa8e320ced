package userRepo

import "slotwise/models"

// UserRepository defines data access for business-owner accounts.
// Lookup methods return (nil, nil) when no document matches.
type UserRepository interface {
	Insert(u *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	TouchLastLogin(id string) error
	// SetBusiness attaches a newly created business to its owner account.
	SetBusiness(id, businessID string) error
	DeleteByBusiness(businessID string) error
	Count() (int64, error)
	// FindOwner returns any account attached to the business, used when
	// backfilling owner_email on legacy business documents.
	FindOwner(businessID string) (*models.User, error)
}
