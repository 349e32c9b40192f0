package models

import "time"

// Booking statuses. Completed, cancelled and declined are terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusScheduled = "scheduled"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusDeclined  = "declined"
)

// Booking is a tutoring booking as supplied by the booking service. The
// scheduled times are only present once staffing has confirmed a tutor;
// until then the student's requested times are all we have.
type Booking struct {
	ID             string     `bson:"id" json:"id"`
	StudentID      string     `bson:"student_id" json:"studentId"`
	TutorRef       string     `bson:"tutor_ref" json:"tutorRef"`
	SubjectRef     string     `bson:"subject_ref" json:"subjectRef"`
	Status         string     `bson:"status" json:"status"`
	ScheduledStart *time.Time `bson:"scheduled_start,omitempty" json:"scheduledStart,omitempty"`
	ScheduledEnd   *time.Time `bson:"scheduled_end,omitempty" json:"scheduledEnd,omitempty"`
	RequestedStart *time.Time `bson:"requested_start,omitempty" json:"requestedStart,omitempty"`
	RequestedEnd   *time.Time `bson:"requested_end,omitempty" json:"requestedEnd,omitempty"`
	MeetingLink    string     `bson:"meeting_link,omitempty" json:"meetingLink,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`
}

// Terminal reports whether the booking status will not change further.
func (b Booking) Terminal() bool {
	switch b.Status {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusDeclined:
		return true
	}
	return false
}
