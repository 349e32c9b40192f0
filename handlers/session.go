package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reminderRepo "tutorly/database/repository/reminder"
	"tutorly/middleware"
	"tutorly/models"
	"tutorly/services/reminder"
	"tutorly/services/session"
	"tutorly/utils"
)

// SessionHandler exposes the session access surface over HTTP: the
// classified dashboard, room joining, and fired reminders.
type SessionHandler struct {
	Access    session.AccessService
	Scheduler reminder.Scheduler
	Reminders reminderRepo.ReminderRepository
	Clock     session.Clock
	Logger    *zap.Logger
}

func NewSessionHandler(access session.AccessService, scheduler reminder.Scheduler, reminders reminderRepo.ReminderRepository, clock session.Clock, logger *zap.Logger) *SessionHandler {
	if clock == nil {
		clock = session.SystemClock{}
	}
	return &SessionHandler{
		Access:    access,
		Scheduler: scheduler,
		Reminders: reminders,
		Clock:     clock,
		Logger:    logger,
	}
}

// DashboardHandler returns the caller's bookings split into upcoming and
// past buckets, and schedules reminders for the upcoming ones as a side
// effect. Reminder scheduling failures never fail the dashboard.
func (h *SessionHandler) DashboardHandler(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "no resolved identity", "")
		return
	}

	dash, err := h.Access.Dashboard(identity)
	if err != nil {
		h.Logger.Error("failed to build session dashboard",
			zap.String("studentID", identity.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load sessions", err.Error())
		return
	}

	if h.Scheduler != nil && len(dash.Upcoming) > 0 {
		upcoming := make([]models.Booking, 0, len(dash.Upcoming))
		for _, view := range dash.Upcoming {
			upcoming = append(upcoming, view.Booking)
		}
		if err := h.Scheduler.ScheduleUpcoming(identity, upcoming, h.Clock.Now()); err != nil {
			h.Logger.Warn("failed to schedule session reminders",
				zap.String("studentID", identity.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, dash)
}

// JoinSessionHandler mints a fresh room credential for the caller and the
// requested booking. The status code distinguishes "no room yet" from
// authorization and validation failures so the UI can react differently.
func (h *SessionHandler) JoinSessionHandler(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "no resolved identity", "")
		return
	}

	bookingID := c.Param("id")
	credential, err := h.Access.Join(identity, bookingID)
	if err != nil {
		switch session.ErrorCode(err) {
		case session.CodeNotFound:
			utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		case session.CodeForbidden:
			utils.JSONError(c, http.StatusForbidden, "not your session", err.Error())
		case session.CodeClosed:
			utils.JSONError(c, http.StatusGone, "session is no longer joinable", err.Error())
		case session.CodeRoomNotReady:
			utils.JSONError(c, http.StatusConflict, "classroom not ready yet", err.Error())
		case session.CodeInvalidInput:
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid join request", err.Error())
		default:
			h.Logger.Error("credential issuance failed",
				zap.String("bookingID", bookingID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to authorize join", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, credential)
}

// ListRemindersHandler returns recently fired session reminders for the
// caller, newest first.
func (h *SessionHandler) ListRemindersHandler(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "no resolved identity", "")
		return
	}

	reminders, err := h.Reminders.ListByStudent(identity.ID, 20)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reminders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}
