package models

import "time"

// AppointmentStatus is the closed set of appointment states.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a confirmed reservation. ServiceName, StaffName, Duration and
// Price are denormalized snapshots taken from the referenced Service/Staff at
// booking time; later edits of those records do not change the appointment.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	BusinessID      string            `bson:"business_id" json:"business_id"`
	CustomerName    string            `bson:"customer_name" json:"customer_name"`
	CustomerPhone   string            `bson:"customer_phone" json:"customer_phone"`
	ServiceID       string            `bson:"service_id" json:"service_id"`
	ServiceName     string            `bson:"service_name" json:"service_name"`
	StaffID         string            `bson:"staff_id,omitempty" json:"staff_id,omitempty"`
	StaffName       string            `bson:"staff_name,omitempty" json:"staff_name,omitempty"`
	AppointmentDate string            `bson:"appointment_date" json:"appointment_date"` // "YYYY-MM-DD"
	TimeSlot        string            `bson:"time_slot" json:"time_slot"`               // "HH:MM", minute granularity
	Duration        int               `bson:"duration" json:"duration"`                 // minutes
	Price           float64           `bson:"price" json:"price"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
}

// AppointmentCreate is the public booking request. StaffID is optional;
// bookings without an assigned staff member are never conflict-checked.
type AppointmentCreate struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	ServiceID       string `json:"service_id" binding:"required"`
	StaffID         string `json:"staff_id"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	TimeSlot        string `json:"time_slot" binding:"required"`
	Notes           string `json:"notes"`
}
