package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"slotwise/config"
	"slotwise/models"
	"slotwise/utils"
)

// InitWorker runs the notification worker in the background. Delivery is an
// SMS gateway placeholder for now; the worker drains the queue and logs each
// confirmation it would send.
func InitWorker() {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentConfirmed, handleAppointmentConfirmed)

	go monitorRedisConnection()

	go func() {
		logger.Info("Starting notification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Notification worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("Notification worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAppointmentConfirmed(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var notice models.AppointmentNotice
	if err := json.Unmarshal(task.Payload(), &notice); err != nil {
		logger.Error("Invalid notification payload", zap.Error(err))
		return err
	}

	message := FormatConfirmation(notice)
	logger.Info("Dispatching booking confirmation",
		zap.String("appointmentId", notice.AppointmentID),
		zap.String("to", notice.CustomerPhone),
		zap.String("message", message))

	return nil
}

// FormatConfirmation renders the customer-facing confirmation text.
func FormatConfirmation(notice models.AppointmentNotice) string {
	msg := fmt.Sprintf("Hi %s, your %s booking at %s is confirmed for %s at %s.",
		notice.CustomerName, notice.ServiceName, notice.BusinessName, notice.Date, notice.TimeSlot)
	if notice.StaffName != "" {
		msg += fmt.Sprintf(" You will be seen by %s.", notice.StaffName)
	}
	return msg
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	logger := utils.GetLogger()
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("Notification queue Redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
