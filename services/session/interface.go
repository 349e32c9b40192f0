package session

import (
	"tutorly/models"
)

// SessionView is a booking enriched with its resolved window, as served to
// the dashboard so the UI never recomputes fallbacks.
type SessionView struct {
	models.Booking
	Window   EffectiveWindow `json:"window"`
	Joinable bool            `json:"joinable"`
}

// Dashboard is the classified view of a student's bookings.
type Dashboard struct {
	Upcoming []SessionView `json:"upcoming"`
	Past     []SessionView `json:"past"`
}

// AccessService is the session access surface: which sessions matter now,
// and a signed pass into one of their rooms.
type AccessService interface {
	Dashboard(student models.Identity) (*Dashboard, error)
	Join(caller models.Identity, bookingID string) (*models.MeetingCredential, error)
}
