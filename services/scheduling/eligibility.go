package scheduling

import (
	"fmt"
	"time"

	"slotwise/models"
)

// CheckEligibility fetches the business and runs the eligibility gate against
// the supplied instant.
func (e *DefaultEngine) CheckEligibility(businessID string, now time.Time) error {
	business, err := e.Businesses.GetByID(businessID)
	if err != nil {
		return fmt.Errorf("eligibility lookup failed for business %s: %w", businessID, err)
	}
	return eligibilityGate(business, now)
}

// eligibilityGate is the pure gate predicate. Rules run in order and the
// first failing rule wins: existence, then suspension, then expiry.
func eligibilityGate(b *models.Business, now time.Time) error {
	if b == nil {
		return newError(CodeNotFound, "business not found")
	}
	if !b.IsActive {
		return newError(CodeSuspended, "business %q has been suspended", b.Name)
	}
	if b.SubscriptionExpires.Before(now) {
		return newError(CodeSubscriptionExpired,
			"subscription for %q expired on %s", b.Name, b.SubscriptionExpires.Format("2006-01-02"))
	}
	return nil
}
