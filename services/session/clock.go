package session

import "time"

// Clock supplies the reference time for classification and token issuance.
// Injected so tests can pin "now" and so the two components never read the
// system clock behind the caller's back.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (f FixedClock) Now() time.Time {
	return f.At
}
