package booking

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("booking period is invalid")

// Period is the requested rental window.
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod validates the window against the current moment: the end
// must be strictly after the start and neither endpoint may be in the
// past. A start exactly at now is accepted.
func NewPeriod(start, end, now time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	if start.Before(now) || end.Before(now) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod rebuilds a Period from persisted state without
// re-validating against the clock.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// IsCurrent reports whether the window covers the given moment.
func (p Period) IsCurrent(now time.Time) bool {
	return !p.start.After(now) && p.end.After(now)
}

// IsPast reports whether the window has fully elapsed.
func (p Period) IsPast(now time.Time) bool {
	return !p.end.After(now)
}
