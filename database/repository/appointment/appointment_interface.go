package appointmentRepo

import "slotwise/models"

// AppointmentRepository defines data access for appointment documents.
// Lookup methods return (nil, nil) when no document matches.
type AppointmentRepository interface {
	Insert(a *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	// ListActiveForStaffDay returns every non-cancelled appointment for the
	// (business, staff, date) triple. This is the conflict-check scope: a
	// different staff member or date never conflicts.
	ListActiveForStaffDay(businessID, staffID, date string) ([]models.Appointment, error)
	// ListByBusiness returns a business's appointments, newest date first.
	ListByBusiness(businessID string) ([]models.Appointment, error)
	SetStatus(id string, status models.AppointmentStatus) (bool, error)
	DeleteByBusiness(businessID string) error
	Count() (int64, error)
	CountByDate(date string) (int64, error)
	CountByBusiness(businessID string) (int64, error)
	// SumCompletedRevenue sums the price of completed appointments whose
	// appointment_date starts with monthPrefix ("YYYY-MM").
	SumCompletedRevenue(monthPrefix string) (float64, error)
}
