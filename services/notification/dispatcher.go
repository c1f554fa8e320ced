package notification

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"slotwise/config"
	"slotwise/models"
)

// Dispatcher enqueues booking notifications onto the Redis-backed queue. The
// scheduling engine treats dispatch as best-effort; a queue failure never
// rolls back a booking.
type Dispatcher struct {
	client *asynq.Client
}

// NewDispatcher builds a dispatcher on the notification queue.
func NewDispatcher() *Dispatcher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	return &Dispatcher{client: client}
}

func (d *Dispatcher) AppointmentConfirmed(ctx context.Context, notice models.AppointmentNotice) error {
	task, opts, err := NewAppointmentConfirmedTask(notice)
	if err != nil {
		return fmt.Errorf("failed to build notification task: %w", err)
	}
	if _, err := d.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
