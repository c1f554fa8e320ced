package scheduling

import (
	"testing"

	"slotwise/models"
)

func TestAllowedTransition(t *testing.T) {
	cases := []struct {
		from, to models.AppointmentStatus
		want     bool
	}{
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusCompleted, models.StatusCancelled, true},
		{models.StatusCancelled, models.StatusCancelled, true},
		{models.StatusCompleted, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusCompleted, false},
		{models.StatusCompleted, models.StatusCompleted, false},
	}
	for _, tc := range cases {
		if got := AllowedTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("AllowedTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestSetAppointmentStatus(t *testing.T) {
	f := newTestFixture()
	appt, err := f.engine.CreateAppointment("biz-1", bookingRequest("staff-ada", "10:00"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	if err := f.engine.SetAppointmentStatus(appt.ID, models.StatusCompleted); err != nil {
		t.Fatalf("confirmed -> completed: %v", err)
	}

	// Completed appointments cannot be reopened.
	err = f.engine.SetAppointmentStatus(appt.ID, models.StatusConfirmed)
	if ErrCode(err) != CodeInvalidTransition {
		t.Fatalf("completed -> confirmed: expected invalidTransition, got %v", err)
	}

	if err := f.engine.SetAppointmentStatus(appt.ID, models.StatusCancelled); err != nil {
		t.Fatalf("completed -> cancelled: %v", err)
	}

	err = f.engine.SetAppointmentStatus(appt.ID, models.StatusCompleted)
	if ErrCode(err) != CodeInvalidTransition {
		t.Fatalf("cancelled -> completed: expected invalidTransition, got %v", err)
	}
}

func TestSetAppointmentStatusUnknownInputs(t *testing.T) {
	f := newTestFixture()

	if err := f.engine.SetAppointmentStatus("missing", models.StatusCancelled); ErrCode(err) != CodeNotFound {
		t.Fatalf("missing appointment: expected notFound, got %v", err)
	}

	appt, err := f.engine.CreateAppointment("biz-1", bookingRequest("", "10:00"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}
	if err := f.engine.SetAppointmentStatus(appt.ID, "rescheduled"); ErrCode(err) != CodeInvalidTransition {
		t.Fatalf("unknown status: expected invalidTransition, got %v", err)
	}
}
