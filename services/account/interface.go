package account

import (
	auditRepo "slotwise/database/repository/audit"
	userRepo "slotwise/database/repository/user"
	"slotwise/models"
)

// AccountService handles business-owner registration and login. Customers
// never authenticate; they book through the public endpoints.
type AccountService interface {
	Register(req models.UserCreate) (*models.Token, error)
	Login(req models.UserLogin) (*models.Token, error)
	GetUserByID(userID string) (*models.User, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Users userRepo.UserRepository
	Audit auditRepo.AuditRepository
}
