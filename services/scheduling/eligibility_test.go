package scheduling

import (
	"testing"
	"time"

	"slotwise/models"
)

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		business *models.Business
		wantCode string
	}{
		{
			name: "eligible",
			business: &models.Business{
				ID: "b1", IsActive: true,
				SubscriptionExpires: now.Add(24 * time.Hour),
			},
		},
		{
			name: "expiring this instant still eligible",
			business: &models.Business{
				ID: "b1", IsActive: true,
				SubscriptionExpires: now,
			},
		},
		{
			name:     "missing business",
			business: nil,
			wantCode: CodeNotFound,
		},
		{
			name: "suspended",
			business: &models.Business{
				ID: "b1", IsActive: false,
				SubscriptionExpires: now.Add(24 * time.Hour),
			},
			wantCode: CodeSuspended,
		},
		{
			name: "expired",
			business: &models.Business{
				ID: "b1", IsActive: true,
				SubscriptionExpires: now.Add(-time.Minute),
			},
			wantCode: CodeSubscriptionExpired,
		},
		{
			name: "suspension takes precedence over expiry",
			business: &models.Business{
				ID: "b1", IsActive: false,
				SubscriptionExpires: now.Add(-24 * time.Hour),
			},
			wantCode: CodeSuspended,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var store *stubBusinessStore
			if tc.business != nil {
				store = newStubBusinessStore(*tc.business)
			} else {
				store = newStubBusinessStore()
			}
			engine := NewDefaultEngine(store, newStubServiceStore(), newStubStaffStore(), newStubAppointmentStore(), nil)

			err := engine.CheckEligibility("b1", now)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("CheckEligibility: %v", err)
				}
				return
			}
			if ErrCode(err) != tc.wantCode {
				t.Fatalf("CheckEligibility: expected %s, got %v", tc.wantCode, err)
			}
		})
	}
}
