package booking

import "errors"

var ErrUnsupportedState = errors.New("unsupported booking state")

// Status is the lifecycle status of a single booking.
type Status string

const (
	StatusWaiting   Status = "WAITING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// State is a listing filter requested by clients. CURRENT/PAST/FUTURE
// are temporal views, WAITING/REJECTED narrow by status, ALL matches
// everything.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState maps a raw query value to a State. An empty value means
// the client did not ask for a filter, so it resolves to ALL.
func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}
	switch State(raw) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(raw), nil
	default:
		return "", ErrUnsupportedState
	}
}

// Statuses returns the booking statuses a State narrows a listing to.
// Only WAITING and REJECTED restrict by status; every other state
// matches all four statuses and relies on temporal filtering alone.
func (s State) Statuses() []Status {
	switch s {
	case StateWaiting:
		return []Status{StatusWaiting}
	case StateRejected:
		return []Status{StatusRejected}
	default:
		return []Status{StatusWaiting, StatusApproved, StatusRejected, StatusCancelled}
	}
}
