package reminderRepo

import "tutorly/models"

// ReminderRepository stores fired session reminders for the web app to poll.
type ReminderRepository interface {
	Insert(reminder models.SessionReminder) error
	ListByStudent(studentID string, limit int64) ([]models.SessionReminder, error)
}
