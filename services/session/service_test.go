package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorly/models"
)

// fakeBookingRepo serves canned bookings, keyed by id.
type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) ListByStudent(studentID string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.bookings {
		if b.ID == bookingID {
			booking := b
			return &booking, nil
		}
	}
	return nil, nil
}

func accessService(repo *fakeBookingRepo, clock Clock) *DefaultAccessService {
	issuer, err := NewIssuer(IssuerConfig{
		AppID:  "tutorly-app",
		Secret: testSecret,
		Domain: "meet.tutorly.test",
	}, clock)
	if err != nil {
		panic(err)
	}
	return &DefaultAccessService{
		Bookings: repo,
		Issuer:   issuer,
		Clock:    clock,
	}
}

func TestDashboardPartitionsAndAnnotates(t *testing.T) {
	student := models.Identity{ID: "stu-1", Name: "Ada", Email: "ada@example.com"}
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{
			ID: "up", StudentID: "stu-1", Status: models.BookingStatusScheduled,
			ScheduledStart: tp(testNow.Add(time.Hour)), MeetingLink: "room-up",
		},
		{
			ID: "done", StudentID: "stu-1", Status: models.BookingStatusCompleted,
			ScheduledStart: tp(testNow.Add(-3 * time.Hour)), ScheduledEnd: tp(testNow.Add(-2 * time.Hour)),
		},
		{
			ID: "pending", StudentID: "stu-1", Status: models.BookingStatusPending,
			RequestedStart: tp(testNow.Add(2 * time.Hour)),
		},
		{ID: "orphan", StudentID: "stu-1", Status: models.BookingStatusPending},
		{ID: "other", StudentID: "stu-2", Status: models.BookingStatusScheduled, ScheduledStart: tp(testNow.Add(time.Hour))},
	}}

	svc := accessService(repo, FixedClock{At: testNow})
	dash, err := svc.Dashboard(student)
	require.NoError(t, err)

	require.Len(t, dash.Upcoming, 2)
	assert.Equal(t, "up", dash.Upcoming[0].ID)
	assert.Equal(t, "pending", dash.Upcoming[1].ID)
	assert.True(t, dash.Upcoming[0].Joinable, "room exists and status live")
	assert.False(t, dash.Upcoming[1].Joinable, "no room assigned yet")
	assert.Equal(t, testNow.Add(time.Hour), dash.Upcoming[0].Window.Start)
	assert.Equal(t, testNow.Add(2*time.Hour), dash.Upcoming[0].Window.End, "default duration fills the missing end")

	require.Len(t, dash.Past, 1)
	assert.Equal(t, "done", dash.Past[0].ID)
}

func TestDashboardPropagatesRepoError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("mongo down")}
	svc := accessService(repo, FixedClock{At: testNow})

	dash, err := svc.Dashboard(models.Identity{ID: "stu-1"})
	assert.Nil(t, dash)
	assert.Error(t, err)
}

func TestJoinRoleResolution(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{
			ID: "bk-1", StudentID: "stu-1", TutorRef: "tut-1",
			Status:         models.BookingStatusScheduled,
			ScheduledStart: tp(time.Now().Add(time.Hour)),
			MeetingLink:    "room-xyz",
		},
	}}
	svc := accessService(repo, SystemClock{})

	t.Run("student joins as participant", func(t *testing.T) {
		cred, err := svc.Join(models.Identity{ID: "stu-1", Name: "Ada"}, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, string(RoleParticipant), cred.Role)
		assert.Equal(t, "room-xyz", cred.Room)
	})

	t.Run("tutor joins as moderator", func(t *testing.T) {
		cred, err := svc.Join(models.Identity{ID: "tut-1", Name: "Grace"}, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, string(RoleModerator), cred.Role)
	})
}

func TestJoinRejections(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "cancelled", StudentID: "stu-1", Status: models.BookingStatusCancelled, MeetingLink: "room-a"},
		{ID: "declined", StudentID: "stu-1", Status: models.BookingStatusDeclined, MeetingLink: "room-b"},
		{ID: "no-room", StudentID: "stu-1", Status: models.BookingStatusScheduled},
		{ID: "ok", StudentID: "stu-1", TutorRef: "tut-1", Status: models.BookingStatusScheduled, MeetingLink: "room-c"},
	}}
	svc := accessService(repo, SystemClock{})
	caller := models.Identity{ID: "stu-1"}

	tests := []struct {
		name      string
		caller    models.Identity
		bookingID string
		wantCode  string
	}{
		{"empty booking id", caller, "", CodeInvalidInput},
		{"unknown booking", caller, "ghost", CodeNotFound},
		{"stranger is refused", models.Identity{ID: "someone-else"}, "ok", CodeForbidden},
		{"cancelled booking is closed", caller, "cancelled", CodeClosed},
		{"declined booking is closed", caller, "declined", CodeClosed},
		{"room not provisioned yet", caller, "no-room", CodeRoomNotReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, err := svc.Join(tt.caller, tt.bookingID)
			assert.Nil(t, cred)
			assert.Equal(t, tt.wantCode, ErrorCode(err))
		})
	}
}
