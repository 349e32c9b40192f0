package session

import (
	"sort"
	"time"

	"tutorly/models"
)

// DefaultSessionDuration is assumed when a booking has a start anchor but no
// end time from either the scheduled or requested pair. Deployments override
// it via SESSION_DEFAULT_MINUTES.
const DefaultSessionDuration = 60 * time.Minute

// EffectiveWindow is the resolved [start, end) interval of a booking after
// applying the scheduled -> requested -> default-duration fallbacks.
type EffectiveWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolveWindow derives the effective window of a booking. The second return
// is false when the booking has neither a scheduled nor a requested start, in
// which case it cannot be placed on a timeline at all.
//
// Inverted or zero-length windows are returned as-is; window sanity is the
// booking creator's problem, not the classifier's.
func ResolveWindow(b models.Booking, defaultDuration time.Duration) (EffectiveWindow, bool) {
	start := b.ScheduledStart
	if start == nil {
		start = b.RequestedStart
	}
	if start == nil {
		return EffectiveWindow{}, false
	}
	end := b.ScheduledEnd
	if end == nil {
		end = b.RequestedEnd
	}
	if end == nil {
		e := start.Add(defaultDuration)
		end = &e
	}
	return EffectiveWindow{Start: *start, End: *end}, true
}

// Classifier partitions bookings into upcoming and past buckets relative to
// a reference time. It is pure: no I/O, no caching, safe to run on every
// dashboard poll.
type Classifier struct {
	// DefaultDuration substitutes for a missing end time. Zero means
	// DefaultSessionDuration.
	DefaultDuration time.Duration
}

type classified struct {
	booking models.Booking
	window  EffectiveWindow
}

// Classify splits bookings into an upcoming list (ascending by effective
// start) and a past list (descending by effective end). Rules:
//
//   - Bookings with no start anchor are dropped from both lists.
//   - A completed booking is past regardless of its window; once a status is
//     terminal it is authoritative over the computed times.
//   - Cancelled and declined bookings never show as upcoming, but only move
//     to past once their window has actually elapsed.
//
// Past ordering is by effective end alone, so a completed booking whose raw
// end is still in the future sorts ahead of naturally elapsed ones.
func (c Classifier) Classify(bookings []models.Booking, now time.Time) (upcoming, past []models.Booking) {
	d := c.DefaultDuration
	if d <= 0 {
		d = DefaultSessionDuration
	}

	var future, elapsed []classified
	for _, b := range bookings {
		w, ok := ResolveWindow(b, d)
		if !ok {
			continue
		}
		entry := classified{booking: b, window: w}
		switch {
		case b.Status == models.BookingStatusCompleted:
			elapsed = append(elapsed, entry)
		case !w.End.After(now):
			elapsed = append(elapsed, entry)
		case b.Status == models.BookingStatusCancelled || b.Status == models.BookingStatusDeclined:
			// Withdrawn with a live window: not actionable, not yet history.
		default:
			future = append(future, entry)
		}
	}

	sort.SliceStable(future, func(i, j int) bool {
		return future[i].window.Start.Before(future[j].window.Start)
	})
	sort.SliceStable(elapsed, func(i, j int) bool {
		return elapsed[i].window.End.After(elapsed[j].window.End)
	})

	for _, e := range future {
		upcoming = append(upcoming, e.booking)
	}
	for _, e := range elapsed {
		past = append(past, e.booking)
	}
	return upcoming, past
}
