package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"lendit/internal/pkg/clock"
)

var (
	ErrItemUnavailable = errors.New("item is not available for booking")
	ErrBookedByOwner   = errors.New("owner cannot book their own item")
)

// ItemSpec carries the item attributes the factory validates against.
// The factory does not depend on the item aggregate; callers project
// what they loaded.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{clock: clk}
}

// NewBooking validates a reservation request and produces a WAITING
// booking. Checks run in a fixed order so callers get a stable error
// for any given request: availability, then ownership, then dates.
func (f *Factory) NewBooking(item ItemSpec, bookerID uuid.UUID, start, end time.Time) (*Booking, error) {
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return nil, ErrBookedByOwner
	}
	period, err := NewPeriod(start, end, f.clock.Now())
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:       uuid.New(),
		itemID:   item.ID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}
