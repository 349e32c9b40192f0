package session

import (
	bookingRepo "tutorly/database/repository/booking"
	"tutorly/models"
)

// DefaultAccessService implements AccessService on top of the booking source
// and the credential issuer. Role computation lives here, at the caller side
// of the issuer boundary: the issuer itself takes whatever role it is given.
type DefaultAccessService struct {
	Bookings   bookingRepo.BookingRepository
	Issuer     *Issuer
	Classifier Classifier
	Clock      Clock
}

func (s *DefaultAccessService) now() Clock {
	if s.Clock == nil {
		return SystemClock{}
	}
	return s.Clock
}

// Dashboard loads the student's bookings and classifies them at the current
// instant. Bookings without any start anchor silently appear in neither
// bucket; that is a data-quality gap in the booking source, not an error.
func (s *DefaultAccessService) Dashboard(student models.Identity) (*Dashboard, error) {
	bookings, err := s.Bookings.ListByStudent(student.ID)
	if err != nil {
		return nil, err
	}

	now := s.now().Now()
	upcoming, past := s.Classifier.Classify(bookings, now)

	d := s.Classifier.DefaultDuration
	if d <= 0 {
		d = DefaultSessionDuration
	}

	dash := &Dashboard{
		Upcoming: make([]SessionView, 0, len(upcoming)),
		Past:     make([]SessionView, 0, len(past)),
	}
	for _, b := range upcoming {
		w, _ := ResolveWindow(b, d)
		dash.Upcoming = append(dash.Upcoming, SessionView{
			Booking:  b,
			Window:   w,
			Joinable: b.MeetingLink != "" && !b.Terminal(),
		})
	}
	for _, b := range past {
		w, _ := ResolveWindow(b, d)
		dash.Past = append(dash.Past, SessionView{Booking: b, Window: w})
	}
	return dash, nil
}

// Join resolves a booking, checks the caller belongs in its room, computes
// the caller's role and mints a fresh credential. The tutor on record is the
// room moderator; everyone else joins as a plain participant.
func (s *DefaultAccessService) Join(caller models.Identity, bookingID string) (*models.MeetingCredential, error) {
	if bookingID == "" {
		return nil, newAccessError(CodeInvalidInput, "booking id is empty")
	}

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, newAccessError(CodeNotFound, "booking %s does not exist", bookingID)
	}
	if booking.StudentID != caller.ID && booking.TutorRef != caller.ID {
		return nil, newAccessError(CodeForbidden, "booking %s does not involve caller", bookingID)
	}
	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusDeclined {
		return nil, newAccessError(CodeClosed, "booking %s is %s", bookingID, booking.Status)
	}
	if booking.MeetingLink == "" {
		return nil, newAccessError(CodeRoomNotReady, "booking %s has no room yet", bookingID)
	}

	role := RoleParticipant
	if caller.ID == booking.TutorRef {
		role = RoleModerator
	}
	return s.Issuer.Issue(caller, booking.MeetingLink, role)
}
