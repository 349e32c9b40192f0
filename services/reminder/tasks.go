package reminder

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeSessionReminder = "session:reminder"

// Payload is the wire body of a session reminder task.
type Payload struct {
	BookingID string    `json:"bookingId"`
	StudentID string    `json:"studentId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	FireAt    time.Time `json:"fireAt"`
}

// NewSessionReminderTask builds a delayed reminder task. The task ID is
// derived from the booking and student so re-scheduling the same session is
// a no-op on the queue.
func NewSessionReminderTask(payload Payload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(payload.FireAt),
		asynq.TaskID("reminder:" + payload.BookingID + ":" + payload.StudentID),
	}
	return task, opts, nil
}
