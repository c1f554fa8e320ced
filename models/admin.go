package models

import "time"

// PlatformStats is the superadmin dashboard summary.
type PlatformStats struct {
	TotalBusinesses    int64   `json:"total_businesses"`
	ActiveBusinesses   int64   `json:"active_businesses"`
	InactiveBusinesses int64   `json:"inactive_businesses"`
	TotalUsers         int64   `json:"total_users"`
	TotalAppointments  int64   `json:"total_appointments"`
	TodayAppointments  int64   `json:"today_appointments"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
}

// BusinessDetail is the per-tenant row of the superadmin business table.
type BusinessDetail struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	OwnerEmail          string     `json:"owner_email"`
	CreatedAt           time.Time  `json:"created_at"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	StaffCount          int64      `json:"staff_count"`
	ServiceCount        int64      `json:"service_count"`
	AppointmentCount    int64      `json:"appointment_count"`
	SubscriptionPlan    string     `json:"subscription_plan"`
	SubscriptionExpires time.Time  `json:"subscription_expires"`
	DaysRemaining       int        `json:"days_remaining"`
	IsActive            bool       `json:"is_active"`
}

// SubscriptionUpdate changes a tenant's plan and expiry.
type SubscriptionUpdate struct {
	SubscriptionPlan    string    `json:"subscription_plan" binding:"required"`
	SubscriptionExpires time.Time `json:"subscription_expires" binding:"required"`
}
