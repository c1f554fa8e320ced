package scheduling

import "fmt"

// checkSlotConflict scans the non-cancelled appointments for the
// (business, staff, date) triple and rejects the candidate [start, end)
// interval on the first half-open overlap. Adjacent bookings sharing a
// boundary are allowed. Callers must hold the slot lock for the triple.
func (e *DefaultEngine) checkSlotConflict(businessID, staffID, date string, start, end int) error {
	existing, err := e.Appointments.ListActiveForStaffDay(businessID, staffID, date)
	if err != nil {
		return fmt.Errorf("conflict check failed for staff %s on %s: %w", staffID, date, err)
	}

	for _, appt := range existing {
		existingStart, err := ParseTimeToMinutes(appt.TimeSlot)
		if err != nil {
			return fmt.Errorf("stored appointment %s has malformed time_slot %q: %w", appt.ID, appt.TimeSlot, err)
		}
		existingEnd := existingStart + appt.Duration

		if IntervalsOverlap(start, end, existingStart, existingEnd) {
			return newError(CodeSlotConflict,
				"slot already booked: existing appointment at %s (%d min)", appt.TimeSlot, appt.Duration)
		}
	}
	return nil
}
