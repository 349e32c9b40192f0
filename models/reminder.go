package models

import "time"

// SessionReminder is a stored "your session starts soon" notice produced by
// the reminder worker and polled by the web app.
type SessionReminder struct {
	ID        string    `bson:"id" json:"id"`
	StudentID string    `bson:"student_id" json:"studentId"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	FiredAt   time.Time `bson:"fired_at" json:"firedAt"`
}
