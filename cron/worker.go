package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"careconnect/config"
	"careconnect/models"
	"careconnect/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeBookingReminder, handleReminderTask(logger))

	// Start Redis health monitor
	go monitorRedisConnection(logger)

	// Start async worker with retry logic
	go func() {
		logger.Info("starting booking reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))

				if attempts == maxAttempts {
					log.Fatal("reminder worker: max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		// Delivery channel is the notification log; reminders never touch
		// booking state.
		logger.Info("booking reminder due",
			zap.String("bookingId", p.BookingID),
			zap.String("seekerId", p.SeekerID),
			zap.String("providerId", p.ProviderID),
			zap.Time("scheduledAt", p.ScheduledAt),
		)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("reminder queue redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
