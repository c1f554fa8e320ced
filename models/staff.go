package models

import "time"

// Staff is a bookable team member of a business. WorkingDays holds weekday
// numbers 1-7 (Monday=1). Services lists the service ids this person can
// perform; it is advisory only and not enforced at booking time.
type Staff struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"business_id" json:"business_id"`
	Name        string    `bson:"name" json:"name"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Services    []string  `bson:"services" json:"services"`
	WorkingDays []int     `bson:"working_days" json:"working_days"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// StaffCreate is the payload for creating or updating a staff member.
type StaffCreate struct {
	Name        string   `json:"name" binding:"required"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Services    []string `json:"services"`
	WorkingDays []int    `json:"working_days"`
}

// DefaultWorkingDays is Monday through Friday.
func DefaultWorkingDays() []int {
	return []int{1, 2, 3, 4, 5}
}
