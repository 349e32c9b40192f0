package reminder

import (
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"tutorly/models"
	"tutorly/services/session"
)

// Scheduler enqueues "session starting soon" tasks for upcoming bookings.
type Scheduler interface {
	ScheduleUpcoming(student models.Identity, upcoming []models.Booking, now time.Time) error
}

// DefaultScheduler implements Scheduler on an asynq client.
type DefaultScheduler struct {
	Client          *asynq.Client
	Lead            time.Duration
	DefaultDuration time.Duration
}

// ScheduleUpcoming enqueues one reminder per upcoming booking, firing Lead
// before the effective start. Sessions already inside the lead window are
// skipped, and duplicate task IDs from repeated dashboard loads are ignored.
// Failures are returned to the caller, which owns the logging.
func (s *DefaultScheduler) ScheduleUpcoming(student models.Identity, upcoming []models.Booking, now time.Time) error {
	for _, b := range upcoming {
		w, ok := session.ResolveWindow(b, s.DefaultDuration)
		if !ok {
			continue
		}
		fireAt := w.Start.Add(-s.Lead)
		if !fireAt.After(now) {
			continue
		}

		task, opts, err := NewSessionReminderTask(Payload{
			BookingID: b.ID,
			StudentID: student.ID,
			Title:     "Your session is starting soon",
			Body:      fmt.Sprintf("Your tutoring session starts at %s.", w.Start.Format(time.Kitchen)),
			FireAt:    fireAt,
		})
		if err != nil {
			return err
		}
		if _, err := s.Client.Enqueue(task, opts...); err != nil {
			if errors.Is(err, asynq.ErrTaskIDConflict) {
				continue
			}
			return fmt.Errorf("enqueue reminder for booking %s: %w", b.ID, err)
		}
	}
	return nil
}
