package models

import "time"

// Business is a bookable tenant (salon, clinic, ...). Slug is globally unique
// and forms the public booking URL. A business accepts bookings only while
// IsActive is true and the subscription has not expired.
type Business struct {
	ID           string         `bson:"id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Slug         string         `bson:"slug" json:"slug"`
	Description  string         `bson:"description,omitempty" json:"description,omitempty"`
	LogoURL      string         `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Phone        string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string         `bson:"address,omitempty" json:"address,omitempty"`
	WorkingHours map[string]any `bson:"working_hours,omitempty" json:"working_hours,omitempty"`
	CreatedAt    time.Time      `bson:"created_at" json:"created_at"`

	OwnerEmail          string     `bson:"owner_email,omitempty" json:"owner_email,omitempty"`
	SubscriptionPlan    string     `bson:"subscription_plan" json:"subscription_plan"`
	SubscriptionExpires time.Time  `bson:"subscription_expires" json:"subscription_expires"`
	IsActive            bool       `bson:"is_active" json:"is_active"`
	LastLogin           *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`

	// Denormalized aggregate counters, moved with $inc at the storage layer.
	TotalAppointments int `bson:"total_appointments" json:"total_appointments"`
	TotalStaff        int `bson:"total_staff" json:"total_staff"`
	TotalServices     int `bson:"total_services" json:"total_services"`
}

// BusinessCreate is the payload for creating or updating a business profile.
type BusinessCreate struct {
	Name        string         `json:"name" binding:"required"`
	Slug        string         `json:"slug" binding:"required"`
	Description string         `json:"description"`
	LogoURL     string         `json:"logo_url"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	WorkingHours map[string]any `json:"working_hours"`
}
