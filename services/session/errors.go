package session

import "fmt"

// AccessError carries a stable code the HTTP layer maps to a status. The UI
// needs to tell "room not ready yet" apart from "you may not join this".
type AccessError struct {
	Code    string
	Message string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeNotFound     = "bookingNotFound"
	CodeForbidden    = "notYourSession"
	CodeClosed       = "sessionClosed"
	CodeRoomNotReady = "roomNotReady"
	CodeInvalidInput = "invalidInput"
)

func newAccessError(code, format string, args ...any) error {
	return &AccessError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the access error code, or "" for foreign errors.
func ErrorCode(err error) string {
	if ae, ok := err.(*AccessError); ok {
		return ae.Code
	}
	return ""
}
