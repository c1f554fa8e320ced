package models

// AppointmentNotice is the payload handed to the notification dispatcher when
// a booking is confirmed. StaffName is empty for staffless bookings.
type AppointmentNotice struct {
	AppointmentID string `json:"appointment_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	BusinessName  string `json:"business_name"`
	ServiceName   string `json:"service_name"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	StaffName     string `json:"staff_name,omitempty"`
}
