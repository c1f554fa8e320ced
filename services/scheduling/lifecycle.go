package scheduling

import (
	"fmt"

	"slotwise/models"
)

// AllowedTransition reports whether an appointment may move from one status
// to another. Cancellation is allowed from any state; confirmed appointments
// may be completed. Everything else is rejected.
func AllowedTransition(from, to models.AppointmentStatus) bool {
	if to == models.StatusCancelled {
		return true
	}
	return from == models.StatusConfirmed && to == models.StatusCompleted
}

// SetAppointmentStatus applies a validated status transition. A transition to
// cancelled frees the slot: cancelled appointments are excluded from all
// future conflict checks.
func (e *DefaultEngine) SetAppointmentStatus(appointmentID string, status models.AppointmentStatus) error {
	if !models.ValidStatus(status) {
		return newError(CodeInvalidTransition, "unknown status %q", status)
	}

	appointment, err := e.Appointments.GetByID(appointmentID)
	if err != nil {
		return fmt.Errorf("status lookup failed for appointment %s: %w", appointmentID, err)
	}
	if appointment == nil {
		return newError(CodeNotFound, "appointment not found")
	}
	if !AllowedTransition(appointment.Status, status) {
		return newError(CodeInvalidTransition,
			"cannot move appointment from %s to %s", appointment.Status, status)
	}

	matched, err := e.Appointments.SetStatus(appointmentID, status)
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", appointmentID, err)
	}
	if !matched {
		return newError(CodeNotFound, "appointment not found")
	}
	return nil
}
