package reminder

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionReminderTask(t *testing.T) {
	fireAt := time.Now().Add(45 * time.Minute).Truncate(time.Second)
	payload := Payload{
		BookingID: "bk-1",
		StudentID: "stu-1",
		Title:     "Your session is starting soon",
		Body:      "Your tutoring session starts at 3:00PM.",
		FireAt:    fireAt,
	}

	task, opts, err := NewSessionReminderTask(payload)
	require.NoError(t, err)
	assert.Equal(t, TypeSessionReminder, task.Type())
	assert.Len(t, opts, 2, "delayed fire time plus dedupe task id")

	var decoded Payload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload.BookingID, decoded.BookingID)
	assert.Equal(t, payload.StudentID, decoded.StudentID)
	assert.True(t, payload.FireAt.Equal(decoded.FireAt))
}
