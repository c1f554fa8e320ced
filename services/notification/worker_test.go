package notification

import (
	"encoding/json"
	"testing"

	"slotwise/models"
)

func TestFormatConfirmation(t *testing.T) {
	notice := models.AppointmentNotice{
		CustomerName: "Grace",
		BusinessName: "Shear Genius",
		ServiceName:  "Haircut",
		Date:         "2026-09-01",
		TimeSlot:     "10:00",
		StaffName:    "Ada",
	}

	got := FormatConfirmation(notice)
	want := "Hi Grace, your Haircut booking at Shear Genius is confirmed for 2026-09-01 at 10:00. You will be seen by Ada."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	notice.StaffName = ""
	got = FormatConfirmation(notice)
	want = "Hi Grace, your Haircut booking at Shear Genius is confirmed for 2026-09-01 at 10:00."
	if got != want {
		t.Fatalf("staffless: got %q, want %q", got, want)
	}
}

func TestAppointmentConfirmedTaskRoundTrip(t *testing.T) {
	notice := models.AppointmentNotice{
		AppointmentID: "appt-1",
		CustomerName:  "Grace",
		CustomerPhone: "+15550100",
		BusinessName:  "Shear Genius",
		ServiceName:   "Haircut",
		Date:          "2026-09-01",
		TimeSlot:      "10:00",
	}

	task, opts, err := NewAppointmentConfirmedTask(notice)
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if task.Type() != TypeAppointmentConfirmed {
		t.Fatalf("task type = %q", task.Type())
	}
	if len(opts) == 0 {
		t.Fatal("task should carry a retry option")
	}

	var decoded models.AppointmentNotice
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if decoded != notice {
		t.Fatalf("payload round trip changed the notice: %+v", decoded)
	}
}
