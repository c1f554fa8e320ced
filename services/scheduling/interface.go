package scheduling

import (
	"context"
	"time"

	"slotwise/models"
)

// Engine is the appointment scheduling and conflict-resolution core. It sits
// between the CRUD/API layer and the document store: eligibility gating, slot
// conflict resolution, appointment assembly and status transitions all live
// here.
type Engine interface {
	// CheckEligibility reports whether the business may accept bookings at
	// the supplied instant. It is evaluated fresh on every call; expiry is
	// time-dependent and must never be cached.
	CheckEligibility(businessID string, now time.Time) error
	CreateAppointment(businessID string, req models.AppointmentCreate) (*models.Appointment, error)
	SetAppointmentStatus(appointmentID string, status models.AppointmentStatus) error
}

// BusinessStore is the business-document collaborator the engine consumes.
type BusinessStore interface {
	GetByID(id string) (*models.Business, error)
	IncrementCounter(id, field string, delta int) error
}

// ServiceStore resolves the referenced service at booking time.
type ServiceStore interface {
	GetByID(id string) (*models.Service, error)
}

// StaffStore resolves the optional staff member for its display name.
type StaffStore interface {
	GetByID(id string) (*models.Staff, error)
}

// AppointmentStore persists and queries appointment documents.
type AppointmentStore interface {
	Insert(a *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	ListActiveForStaffDay(businessID, staffID, date string) ([]models.Appointment, error)
	SetStatus(id string, status models.AppointmentStatus) (bool, error)
}

// Notifier dispatches the booking confirmation. Dispatch is best-effort: a
// failure is logged and never rolls back the booking.
type Notifier interface {
	AppointmentConfirmed(ctx context.Context, notice models.AppointmentNotice) error
}

// DefaultEngine is the production implementation.
type DefaultEngine struct {
	Businesses   BusinessStore
	Services     ServiceStore
	Staff        StaffStore
	Appointments AppointmentStore
	Notifier     Notifier

	locks *slotLocks
}

func NewDefaultEngine(
	businesses BusinessStore,
	services ServiceStore,
	staff StaffStore,
	appointments AppointmentStore,
	notifier Notifier,
) *DefaultEngine {
	return &DefaultEngine{
		Businesses:   businesses,
		Services:     services,
		Staff:        staff,
		Appointments: appointments,
		Notifier:     notifier,
		locks:        newSlotLocks(),
	}
}
