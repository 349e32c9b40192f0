package reminder

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"tutorly/config"
	reminderRepo "tutorly/database/repository/reminder"
	"tutorly/models"
	"tutorly/utils"
)

// InitReminderWorker runs the async reminder worker in the background. Fired
// reminders land in the reminder repository, which the web app polls.
func InitReminderWorker(repo reminderRepo.ReminderRepository) {
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
	mux.HandleFunc(TypeSessionReminder, handleSessionReminder(repo))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting session reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("session reminder worker failed", zap.Error(err))
		}
	}()
}

func handleSessionReminder(repo reminderRepo.ReminderRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p Payload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		err := repo.Insert(models.SessionReminder{
			ID:        uuid.New().String(),
			StudentID: p.StudentID,
			BookingID: p.BookingID,
			Title:     p.Title,
			Body:      p.Body,
			FiredAt:   time.Now(),
		})
		if err != nil {
			logger.Error("failed to store session reminder",
				zap.String("bookingID", p.BookingID), zap.Error(err))
		}
		return err
	}
}
