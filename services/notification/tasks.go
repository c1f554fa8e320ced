package notification

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"slotwise/models"
)

const TypeAppointmentConfirmed = "notification:appointmentConfirmed"

// NewAppointmentConfirmedTask wraps a booking notice as an asynq task with a
// couple of retries before the notice is dropped.
func NewAppointmentConfirmedTask(notice models.AppointmentNotice) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(notice)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentConfirmed, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}
